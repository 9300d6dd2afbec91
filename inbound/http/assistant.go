package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/contract"
	"agri-drone/common/errs"
	"agri-drone/common/otel"
	"agri-drone/common/vars"
	"agri-drone/core/booking"
	"agri-drone/model"
	"encoding/json"
	"fmt"
	"github.com/go-playground/validator/v10"
	"log/slog"
	"net/http"
	"strings"
)

var errAssistantUnavailable = &errs.HttpError{Code: http.StatusBadGateway, Message: "Assistant unavailable"}

type AssistantHttp struct {
	Assistant contract.Assistant
	Validate  *validator.Validate
}

func RegisterAssistantHttp(mux *http.ServeMux, assistant contract.Assistant, validate *validator.Validate) *AssistantHttp {
	in := &AssistantHttp{Assistant: assistant, Validate: validate}

	mux.HandleFunc("POST /api/assistant/ask", in.ask)

	return in
}

func (in AssistantHttp) ask(w http.ResponseWriter, r *http.Request) {
	var req model.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	req.Question = booking.Sanitize(req.Question)
	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AssistantHttp.ask")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "assistant receive question", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	answer, err := in.Assistant.Ask(ctx, req.Question, priceListText(vars.GetPriceTable()))
	if err != nil {
		slog.ErrorContext(ctx, "assistant failed", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		writeErrorResponse(w, errAssistantUnavailable)
		return
	}

	writeJSONResponse(w, http.StatusOK, model.AskResponse{Answer: answer})
}

// priceListText renders the price table as plain lines for prompts and chat.
func priceListText(table *booking.PriceTable) string {
	var sb strings.Builder

	sb.WriteString("พืช:\n")
	for _, item := range table.Crops() {
		fmt.Fprintf(&sb, "- %s %s บาท/ไร่\n", item.Name, money(item.PricePerRai))
	}

	sb.WriteString("ประเภทการพ่น:\n")
	for _, item := range table.Sprays() {
		fmt.Fprintf(&sb, "- %s %s บาท/ไร่\n", item.Name, money(item.PricePerRai))
	}

	return strings.TrimRight(sb.String(), "\n")
}
