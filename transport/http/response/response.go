package response

import (
	"encoding/json"
	"net/http"
	"tasktracker/shared/constant"
	"tasktracker/shared/failure"
	"tasktracker/shared/logger"
	"tasktracker/transport/http/view"

	"github.com/rs/zerolog/log"
)

const messageInternalError = "Something went wrong. Please try again later."

type Message struct {
	Message *string `json:"message,omitempty"`
}

// ErrorPage is the data rendered by the error page.
type ErrorPage struct {
	Code    int
	Title   string
	Message string
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	WithJSON(writer, code, Message{Message: &message})
}

// WithJSON sends the payload as the top-level JSON document
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	write(writer, code, constant.ContentTypeJSON, body)
}

// WithHTML sends an already rendered HTML document
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	write(writer, code, constant.ContentTypeHTML, body)
}

// WithPage renders a page and sends it, falling back to a plain 500 when rendering fails
func WithPage(writer http.ResponseWriter, renderer view.Renderer, code int, page string, data any) {
	body, err := renderer.Render(page, data)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, messageInternalError, http.StatusInternalServerError)

		return
	}

	WithHTML(writer, code, body)
}

// WithRedirect sends a See Other redirect so that a POST is followed by a GET
func WithRedirect(writer http.ResponseWriter, request *http.Request, location string) {
	http.Redirect(writer, request, location, http.StatusSeeOther)
}

// WithErrorPage renders the error page for err. Server side failures keep their detail in the log.
func WithErrorPage(writer http.ResponseWriter, renderer view.Renderer, err error) {
	code := failure.GetCode(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("Request failed")

		message = messageInternalError
	}

	WithStatusPage(writer, renderer, code, message)
}

// WithStatusPage renders the error page for a bare status code
func WithStatusPage(writer http.ResponseWriter, renderer view.Renderer, code int, message string) {
	WithPage(writer, renderer, code, view.PageError, ErrorPage{
		Code:    code,
		Title:   http.StatusText(code),
		Message: message,
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
