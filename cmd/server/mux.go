package main

import (
	"net/http"
)

type Handler struct {
	processor BatchProcessor
	printer   SummaryPrinter
}

func NewHandler(
	processor BatchProcessor,
	printer SummaryPrinter,
) *Handler {
	return &Handler{
		processor: processor,
		printer:   printer,
	}
}

func (h *Handler) ServeHTTP(
	w http.ResponseWriter,
	r *http.Request,
) {
	if apiKey != r.URL.Query().Get("api_key") {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	summary, err := h.processor.Run(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.printer.Stat(r.Context(), summary)))

	if len(summary.Errors) > 0 {
		_, _ = w.Write([]byte("\n\n"))
		_, _ = w.Write([]byte(h.printer.Errors(r.Context(), summary)))
	}
}
