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
	"agri-drone/outbound/sqlgen"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	lineSignatureHeader = "X-Line-Signature"
	lineMaxBodyBytes    = 1 << 20
	lineStatusLimit     = 5
)

const (
	stepCrop  = "crop"
	stepSpray = "spray"
	stepArea  = "area"
	stepPhone = "phone"
	stepName  = "name"
)

var errBadSignature = &errs.HttpError{Code: http.StatusUnauthorized, Message: "Invalid signature"}

// LineHttp serves the LINE Messaging API webhook and drives the chat booking
// conversation.
type LineHttp struct {
	Cache     *redis.Client
	Querier   *sqlgen.Queries
	Creator   *BookingCreator
	Messenger contract.LineMessenger
	Assistant contract.Assistant
	Verifier  contract.LineSignatureVerifier

	sessionTTL time.Duration
}

func RegisterLineHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	cache *redis.Client,
	querier *sqlgen.Queries,
	creator *BookingCreator,
	messenger contract.LineMessenger,
	assistant contract.Assistant,
	verifier contract.LineSignatureVerifier,
) *LineHttp {
	in := &LineHttp{
		Cache:     cache,
		Querier:   querier,
		Creator:   creator,
		Messenger: messenger,
		Assistant: assistant,
		Verifier:  verifier,

		sessionTTL: cfg.GetDuration("line.session_ttl"),
	}

	if in.sessionTTL <= 0 {
		in.sessionTTL = constant.LineSessionDefaultTTL
	}

	mux.HandleFunc("POST /api/line/webhook", in.webhook)

	return in
}

func (in LineHttp) webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, lineMaxBodyBytes))
	if err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if !in.Verifier.VerifySignature(body, r.Header.Get(lineSignatureHeader)) {
		writeErrorResponse(w, errBadSignature)
		return
	}

	var req model.LineWebhookRequest
	if err = json.Unmarshal(body, &req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "LineHttp.webhook")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "line webhook receive request", slog.Int("events", len(req.Events)), traceIdAttr)

	for _, ev := range req.Events {
		if ev.Type != "message" || ev.Message.Type != "text" || ev.Source.UserID == "" {
			continue
		}

		if err := in.handleText(ctx, ev); err != nil {
			slog.ErrorContext(ctx, "failed to handle line message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
			common.UtilSpanError(span, err)
		}
	}

	w.WriteHeader(http.StatusOK)
}

func (in LineHttp) handleText(ctx context.Context, ev model.LineEvent) error {
	text := strings.TrimSpace(ev.Message.Text)
	userID := ev.Source.UserID

	switch text {
	case constant.LineCommandCancel:
		if err := in.clearSession(ctx, userID); err != nil {
			return err
		}
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineCancelled})

	case constant.LineCommandBook:
		if err := in.saveSession(ctx, userID, model.LineSession{Step: stepCrop}); err != nil {
			return err
		}
		return in.reply(ctx, ev, in.askCrop(vars.GetPriceTable()))

	case constant.LineCommandPrice:
		table := vars.GetPriceTable()
		if table == nil {
			return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineSystemFailed})
		}
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LinePriceHeader + "\n" + priceListText(table)})

	case constant.LineCommandStatus:
		return in.replyStatus(ctx, ev)
	}

	session, ok, err := in.loadSession(ctx, userID)
	if err != nil {
		return err
	}

	if ok {
		return in.advance(ctx, ev, session, text)
	}

	return in.replyAssistant(ctx, ev, text)
}

// advance records one answer of the booking conversation and asks the next
// question. Invalid answers repeat the question with the validator's message.
func (in LineHttp) advance(ctx context.Context, ev model.LineEvent, session model.LineSession, text string) error {
	table := vars.GetPriceTable()
	if table == nil {
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineSystemFailed})
	}

	var next contract.LineMessage
	switch session.Step {
	case stepCrop:
		item, ok := findPriceItem(table.Crops(), text)
		if !ok {
			ask := in.askCrop(table)
			ask.Text = booking.MsgCropTypeUnknown + "\n" + ask.Text
			return in.reply(ctx, ev, ask)
		}
		session.CropType = item.Key
		session.Step = stepSpray
		next = in.askSpray(table)

	case stepSpray:
		item, ok := findPriceItem(table.Sprays(), text)
		if !ok {
			ask := in.askSpray(table)
			ask.Text = booking.MsgSprayTypeUnknown + "\n" + ask.Text
			return in.reply(ctx, ev, ask)
		}
		session.SprayType = item.Key
		session.Step = stepArea
		next = contract.LineMessage{Text: constant.LineAskArea}

	case stepArea:
		if _, err := booking.ParseArea(text); err != nil {
			return in.reply(ctx, ev, contract.LineMessage{Text: booking.MsgAreaSizeInvalid})
		}
		session.AreaSize = text
		session.Step = stepPhone
		next = contract.LineMessage{Text: constant.LineAskPhone}

	case stepPhone:
		if !booking.ValidPhone(text) {
			return in.reply(ctx, ev, contract.LineMessage{Text: booking.MsgPhoneNumberInvalid})
		}
		session.PhoneNumber = text
		session.Step = stepName
		next = contract.LineMessage{Text: constant.LineAskName}

	case stepName:
		if booking.Sanitize(text) == "" {
			return in.reply(ctx, ev, contract.LineMessage{Text: booking.MsgCustomerNameRequired})
		}
		return in.finish(ctx, ev, session, text)

	default:
		if err := in.clearSession(ctx, ev.Source.UserID); err != nil {
			return err
		}
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineFallback})
	}

	if err := in.saveSession(ctx, ev.Source.UserID, session); err != nil {
		return err
	}

	return in.reply(ctx, ev, next)
}

func (in LineHttp) finish(ctx context.Context, ev model.LineEvent, session model.LineSession, name string) error {
	created, err := in.Creator.Create(ctx, booking.Request{
		CustomerName: name,
		PhoneNumber:  session.PhoneNumber,
		AreaSize:     session.AreaSize,
		CropType:     session.CropType,
		SprayType:    session.SprayType,
		LineUserID:   ev.Source.UserID,
	})

	var result booking.ValidationResult
	switch {
	case err == nil:
	case errors.As(err, &result) && len(result.Errors) > 0:
		if clearErr := in.clearSession(ctx, ev.Source.UserID); clearErr != nil {
			return clearErr
		}
		return in.reply(ctx, ev, contract.LineMessage{Text: fmt.Sprintf(constant.LineBookingRejected, result.Errors[0].Message)})
	case errors.Is(err, errBookingLocked):
		if clearErr := in.clearSession(ctx, ev.Source.UserID); clearErr != nil {
			return clearErr
		}
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineBookingLocked})
	default:
		if replyErr := in.reply(ctx, ev, contract.LineMessage{Text: constant.LineSystemFailed}); replyErr != nil {
			slog.ErrorContext(ctx, "failed to reply line message", slog.Any(constant.LogFieldErr, replyErr))
		}
		return err
	}

	if err = in.clearSession(ctx, ev.Source.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to clear line session", slog.Any(constant.LogFieldErr, err))
	}

	return in.reply(ctx, ev, contract.LineMessage{Text: in.Creator.ConfirmationMessage(created.Record)})
}

func (in LineHttp) replyStatus(ctx context.Context, ev model.LineEvent) error {
	rows, err := in.Querier.ListBookingsByLineUser(ctx, sqlgen.ListBookingsByLineUserParams{
		LineUserID: common.TextFromString(ev.Source.UserID),
		Limit:      lineStatusLimit,
	})
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineNoBookings})
	}

	lines := []string{constant.LineStatusHeader}
	for _, b := range rows {
		label, ok := constant.LineStatusLabels[b.Status]
		if !ok {
			label = b.Status
		}
		lines = append(lines, fmt.Sprintf(constant.LineStatusLine, b.BookingCode, label, formatBaht(in.Creator.Printer, common.DecimalFromNumeric(b.TotalPrice))))
	}

	return in.reply(ctx, ev, contract.LineMessage{Text: strings.Join(lines, "\n")})
}

func (in LineHttp) replyAssistant(ctx context.Context, ev model.LineEvent, text string) error {
	question := booking.Sanitize(text)
	if question == "" || in.Assistant == nil {
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineFallback})
	}

	answer, err := in.Assistant.Ask(ctx, question, priceListText(vars.GetPriceTable()))
	if err != nil {
		slog.WarnContext(ctx, "assistant failed for line message", slog.Any(constant.LogFieldErr, err))
		return in.reply(ctx, ev, contract.LineMessage{Text: constant.LineFallback})
	}

	return in.reply(ctx, ev, contract.LineMessage{Text: answer})
}

func (in LineHttp) askCrop(table *booking.PriceTable) contract.LineMessage {
	return contract.LineMessage{Text: constant.LineAskCrop, QuickReplies: itemNames(table.Crops())}
}

func (in LineHttp) askSpray(table *booking.PriceTable) contract.LineMessage {
	return contract.LineMessage{Text: constant.LineAskSpray, QuickReplies: itemNames(table.Sprays())}
}

func (in LineHttp) reply(ctx context.Context, ev model.LineEvent, messages ...contract.LineMessage) error {
	return in.Messenger.Reply(ctx, ev.ReplyToken, messages...)
}

func (in LineHttp) loadSession(ctx context.Context, userID string) (model.LineSession, bool, error) {
	var session model.LineSession

	data, err := in.Cache.Get(ctx, fmt.Sprintf(constant.LineSessionKey, userID)).Result()
	if errors.Is(err, redis.Nil) {
		return session, false, nil
	}
	if err != nil {
		return session, false, fmt.Errorf("load line session: %w", err)
	}

	if err = json.Unmarshal([]byte(data), &session); err != nil {
		return session, false, nil
	}

	return session, true, nil
}

func (in LineHttp) saveSession(ctx context.Context, userID string, session model.LineSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err = in.Cache.Set(ctx, fmt.Sprintf(constant.LineSessionKey, userID), string(data), in.sessionTTL).Err(); err != nil {
		return fmt.Errorf("save line session: %w", err)
	}

	return nil
}

func (in LineHttp) clearSession(ctx context.Context, userID string) error {
	if err := in.Cache.Del(ctx, fmt.Sprintf(constant.LineSessionKey, userID)).Err(); err != nil {
		return fmt.Errorf("clear line session: %w", err)
	}
	return nil
}

// findPriceItem matches a chat answer against item keys and display names.
func findPriceItem(items []booking.PriceItem, text string) (booking.PriceItem, bool) {
	for _, item := range items {
		if strings.EqualFold(item.Key, text) || item.Name == text {
			return item, true
		}
	}
	return booking.PriceItem{}, false
}

func itemNames(items []booking.PriceItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
