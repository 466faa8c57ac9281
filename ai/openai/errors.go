package openai

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/poiesic/minutes/ai"
	oai "github.com/sashabaranov/go-openai"
)

var errNoChoices = errors.New("model returned no choices")

// langchaingo reports HTTP failures only through the message text.
var statusCodePattern = regexp.MustCompile(`status code:? (429|5\d\d)\b`)

// isTransient extends ai.IsTransient with the status codes carried by the
// go-openai and langchaingo error types.
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *oai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *oai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return retryableStatus(reqErr.HTTPStatusCode)
	}

	if statusCodePattern.MatchString(err.Error()) {
		return true
	}
	return ai.IsTransient(err)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= http.StatusInternalServerError
}
