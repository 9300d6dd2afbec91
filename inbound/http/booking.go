package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/contract"
	"agri-drone/common/errs"
	"agri-drone/common/jetstream"
	"agri-drone/common/otel"
	"agri-drone/common/vars"
	"agri-drone/core/booking"
	"agri-drone/model"
	"agri-drone/outbound/receipt"
	"agri-drone/outbound/sqlgen"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultDepositRate    = "0.30"
	defaultInsertAttempts = 3
	defaultUploadBytes    = 5 << 20

	uniqueViolation = "23505"
	changedByClient = "customer"
)

var (
	errPriceTableUnavailable = &errs.HttpError{Code: http.StatusServiceUnavailable, Message: "Price table unavailable"}
	errBookingLocked         = errs.Conflict("Booking already submitted, please wait")
	errNotAwaitingPayment    = errs.Conflict("Booking is not awaiting payment")
	errSlipRequired          = &errs.HttpError{Code: http.StatusBadRequest, Message: "Slip file is required"}
	errSlipTooLarge          = &errs.HttpError{Code: http.StatusRequestEntityTooLarge, Message: "Slip file too large"}
	errSlipType              = &errs.HttpError{Code: http.StatusUnsupportedMediaType, Message: "Slip must be a JPEG, PNG or PDF file"}
)

var slipExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// BookingCreator runs the booking pipeline shared by the web form and the chat
// bot: sanitize, validate, price, build, lock, persist and publish.
type BookingCreator struct {
	Querier   *sqlgen.Queries
	Cache     *redis.Client
	Publisher jetstream.Publisher
	Codes     *booking.CodeGenerator
	Printer   *message.Printer

	DepositRate    decimal.Decimal
	LockTTL        time.Duration
	InsertAttempts int
	BankAccount    string
}

type CreatedBooking struct {
	ID     int32
	Record booking.Record
}

func NewBookingCreator(
	cfg *viper.Viper,
	querier *sqlgen.Queries,
	cache *redis.Client,
	publisher jetstream.Publisher,
	codes *booking.CodeGenerator,
	printer *message.Printer,
) *BookingCreator {
	c := &BookingCreator{
		Querier:   querier,
		Cache:     cache,
		Publisher: publisher,
		Codes:     codes,
		Printer:   printer,

		DepositRate:    DepositRate(cfg),
		LockTTL:        cfg.GetDuration("booking.submit_lock_ttl"),
		InsertAttempts: cfg.GetInt("booking.insert_attempts"),
		BankAccount:    cfg.GetString("booking.bank_account"),
	}

	if c.LockTTL <= 0 {
		c.LockTTL = constant.BookingSubmitLockDefaultTTL
	}
	if c.InsertAttempts <= 0 {
		c.InsertAttempts = defaultInsertAttempts
	}

	return c
}

// DepositRate reads booking.deposit_rate, falling back to 30%.
func DepositRate(cfg *viper.Viper) decimal.Decimal {
	rate, err := decimal.NewFromString(cfg.GetString("booking.deposit_rate"))
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.RequireFromString(defaultDepositRate)
	}
	return rate
}

// Create returns a booking.ValidationResult as the error when the request is
// rejected by validation.
func (c *BookingCreator) Create(ctx context.Context, req booking.Request) (CreatedBooking, error) {
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	table := vars.GetPriceTable()
	if table == nil {
		slog.ErrorContext(ctx, "price table not loaded", traceIdAttr)
		return CreatedBooking{}, errPriceTableUnavailable
	}

	record, result, err := booking.Prepare(req, table, c.DepositRate, c.Codes)
	if err != nil {
		slog.ErrorContext(ctx, "failed to price booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return CreatedBooking{}, err
	}

	if !result.Valid {
		slog.DebugContext(ctx, "booking validation failed", traceIdAttr, slog.Any(constant.LogFieldResponse, result.Errors))
		return CreatedBooking{}, result
	}

	lockKey := submitLockKey(record)
	locked, err := c.Cache.SetNX(ctx, lockKey, true, c.LockTTL).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to set submit lock", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return CreatedBooking{}, err
	}

	if !locked {
		slog.DebugContext(ctx, "booking already submitted", traceIdAttr)
		return CreatedBooking{}, errBookingLocked
	}

	id, err := c.insert(ctx, &record)
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))

		if delErr := c.Cache.Del(ctx, lockKey).Err(); delErr != nil {
			slog.ErrorContext(ctx, "failed to release submit lock", traceIdAttr, slog.Any(constant.LogFieldErr, delErr))
		}
		return CreatedBooking{}, err
	}

	err = common.PublishMessage(ctx, c.Publisher, constant.SubjectBookingCreated, model.BookingCreatedEventMessage{
		ID:            id,
		BookingCode:   record.BookingCode,
		CustomerName:  record.CustomerName,
		PhoneNumber:   record.PhoneNumber,
		TotalPrice:    money(record.TotalPrice),
		DepositAmount: money(record.DepositAmount),
		ScheduledDate: dateString(record.ScheduledDate),
		LineUserID:    record.LineUserID,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish booking created message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	slog.InfoContext(ctx, "insert booking success", traceIdAttr, slog.String(constant.LogFieldCode, record.BookingCode))

	return CreatedBooking{ID: id, Record: record}, nil
}

// submitLockKey identifies a submission by phone and plot, so a resubmit of the
// same job is locked while another plot from the same phone is not.
func submitLockKey(record booking.Record) string {
	return fmt.Sprintf(constant.BookingSubmitLock,
		record.PhoneNumber,
		record.CropType,
		record.SprayType,
		record.AreaSize.String(),
		dateString(record.ScheduledDate),
	)
}

// insert retries with a fresh code when the store reports a duplicate one.
func (c *BookingCreator) insert(ctx context.Context, record *booking.Record) (int32, error) {
	for attempt := 1; ; attempt++ {
		id, err := c.Querier.InsertBooking(ctx, sqlgen.InsertBookingParams{
			BookingCode:    record.BookingCode,
			CustomerName:   record.CustomerName,
			Phone:          record.PhoneNumber,
			AreaSize:       common.NumericFromDecimal(record.AreaSize),
			CropType:       record.CropType,
			SprayType:      record.SprayType,
			GpsCoordinates: record.GPSCoordinates,
			ScheduledDate:  common.DateFromTime(record.ScheduledDate),
			Notes:          record.Notes,
			TotalPrice:     common.NumericFromDecimal(record.TotalPrice),
			DepositAmount:  common.NumericFromDecimal(record.DepositAmount),
			Status:         string(record.Status),
			LineUserID:     common.TextFromString(record.LineUserID),
		})
		if err == nil {
			return id, nil
		}

		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation || attempt >= c.InsertAttempts {
			return 0, err
		}

		slog.WarnContext(ctx, "booking code collision, regenerating", slog.String(constant.LogFieldCode, record.BookingCode))
		record.BookingCode = c.Codes.Next()
	}
}

// ConfirmationMessage is the text shown to the customer after booking.
func (c *BookingCreator) ConfirmationMessage(record booking.Record) string {
	return fmt.Sprintf(constant.BookingConfirmationTemplate,
		record.BookingCode,
		record.CustomerName,
		record.AreaSize.String(),
		record.Notes,
		formatBaht(c.Printer, record.TotalPrice),
		formatBaht(c.Printer, record.DepositAmount),
		formatBaht(c.Printer, record.TotalPrice.Sub(record.DepositAmount)),
		c.BankAccount,
	)
}

type BookingHttp struct {
	Db        contract.DbConn
	Querier   *sqlgen.Queries
	Creator   *BookingCreator
	Publisher jetstream.Publisher
	Slips     contract.SlipStore
	Line      contract.LineMessenger
	Receipts  *receipt.ReceiptOutbound
	Validate  *validator.Validate

	TimeNow func() time.Time

	maxUploadBytes int64
}

func RegisterBookingHttp(
	mux *http.ServeMux,
	cfg *viper.Viper,
	db contract.DbConn,
	querier *sqlgen.Queries,
	creator *BookingCreator,
	publisher jetstream.Publisher,
	slips contract.SlipStore,
	line contract.LineMessenger,
	receipts *receipt.ReceiptOutbound,
	validate *validator.Validate,
) *BookingHttp {
	in := &BookingHttp{
		Db:        db,
		Querier:   querier,
		Creator:   creator,
		Publisher: publisher,
		Slips:     slips,
		Line:      line,
		Receipts:  receipts,
		Validate:  validate,
		TimeNow:   time.Now,

		maxUploadBytes: cfg.GetInt64("upload.max_bytes"),
	}

	if in.maxUploadBytes <= 0 {
		in.maxUploadBytes = defaultUploadBytes
	}

	mux.HandleFunc("POST /api/bookings/quote", in.quote)
	mux.HandleFunc("POST /api/bookings", in.create)
	mux.HandleFunc("GET /api/bookings/{code}", in.get)
	mux.HandleFunc("POST /api/bookings/{code}/slip", in.uploadSlip)
	mux.HandleFunc("GET /api/bookings/{code}/receipt", in.receipt)

	return in
}

func (in BookingHttp) quote(w http.ResponseWriter, r *http.Request) {
	var req model.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	table := vars.GetPriceTable()
	if table == nil {
		writeErrorResponse(w, errPriceTableUnavailable)
		return
	}

	var price booking.Price
	area, err := booking.ParseArea(req.AreaSize.String())
	if err == nil {
		price, err = booking.CalculatePrice(table, req.CropType, req.SprayType, area, in.Creator.DepositRate)
	}

	if err != nil {
		writeErrorResponse(w, quoteValidationResult(err))
		return
	}

	writeJSONResponse(w, http.StatusOK, model.QuoteResponse{
		CropUnitPrice:  money(price.CropUnitPrice),
		SprayUnitPrice: money(price.SprayUnitPrice),
		TotalPrice:     money(price.TotalPrice),
		DepositAmount:  money(price.DepositAmount),
		Balance:        money(price.Balance()),
	})
}

func quoteValidationResult(err error) error {
	var field booking.FieldError
	switch {
	case errors.Is(err, booking.ErrInvalidArea), errors.Is(err, booking.ErrAmountTooLarge):
		field = booking.FieldError{Field: booking.FieldAreaSize, Message: booking.MsgAreaSizeInvalid}
	case errors.Is(err, booking.ErrUnknownCropType):
		field = booking.FieldError{Field: booking.FieldCropType, Message: booking.MsgCropTypeUnknown}
	case errors.Is(err, booking.ErrUnknownSprayType):
		field = booking.FieldError{Field: booking.FieldSprayType, Message: booking.MsgSprayTypeUnknown}
	default:
		return err
	}
	return booking.ValidationResult{Valid: false, Errors: []booking.FieldError{field}}
}

func (in BookingHttp) create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.create")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "create booking receive request", slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	created, err := in.Creator.Create(ctx, req.ToBookingRequest())
	if err != nil {
		common.UtilSpanError(span, err)
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, model.CreateBookingResponse{
		Id:            created.ID,
		BookingCode:   created.Record.BookingCode,
		TotalPrice:    money(created.Record.TotalPrice),
		DepositAmount: money(created.Record.DepositAmount),
		Status:        string(created.Record.Status),
		Message:       in.Creator.ConfirmationMessage(created.Record),
	})
}

func (in BookingHttp) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	b, err := in.Querier.FindBookingByCode(ctx, r.PathValue("code"))
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errs.ErrBookingMissing)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, toBookingResponse(b))
}

func (in BookingHttp) uploadSlip(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	ctx, span := otel.Tracer.Start(r.Context(), "BookingHttp.uploadSlip")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	codeAttr := slog.String(constant.LogFieldCode, code)
	slog.InfoContext(ctx, "upload slip receive request", codeAttr, traceIdAttr)

	r.Body = http.MaxBytesReader(w, r.Body, in.maxUploadBytes)
	if err := r.ParseMultipartForm(in.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeErrorResponse(w, errSlipTooLarge)
			return
		}
		writeErrorResponse(w, errSlipRequired)
		return
	}

	file, _, err := r.FormFile("slip")
	if err != nil {
		writeErrorResponse(w, errSlipRequired)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		slog.ErrorContext(ctx, "failed to detect slip type", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	ext, ok := slipExtensions[mtype.String()]
	if !ok {
		slog.DebugContext(ctx, "slip type rejected", traceIdAttr, slog.String("mime", mtype.String()))
		writeErrorResponse(w, errSlipType)
		return
	}

	if _, err = file.Seek(0, io.SeekStart); err != nil {
		slog.ErrorContext(ctx, "failed to rewind slip", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	tx, err := in.Db.Begin(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to begin transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rollback transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	withTx := in.Querier.WithTx(tx)

	b, err := withTx.FindBookingByCodeForUpdate(ctx, code)
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errs.ErrBookingMissing)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if booking.Status(b.Status) != booking.StatusPendingPayment {
		slog.DebugContext(ctx, "booking not awaiting payment", traceIdAttr, slog.String("status", b.Status))
		writeErrorResponse(w, errNotAwaitingPayment)
		return
	}

	path, err := in.Slips.Save(ctx, ulid.Make().String()+ext, file)
	if err != nil {
		slog.ErrorContext(ctx, "failed to save slip", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := in.Slips.Remove(ctx, path); err != nil {
			slog.ErrorContext(ctx, "failed to remove uncommitted slip", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}()

	cmd, err := withTx.UpdateBookingSlip(ctx, sqlgen.UpdateBookingSlipParams{
		ID:       b.ID,
		SlipPath: common.TextFromString(path),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to update booking slip", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errNotAwaitingPayment)
		return
	}

	err = withTx.InsertBookingStatusHistory(ctx, sqlgen.InsertBookingStatusHistoryParams{
		BookingID:  b.ID,
		FromStatus: string(booking.StatusPendingPayment),
		ToStatus:   string(booking.StatusPaid),
		ChangedBy:  changedByClient,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to insert status history", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if err = tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}
	committed = true

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectBookingPaid, model.BookingStatusChangedEventMessage{
		BookingCode: b.BookingCode,
		FromStatus:  string(booking.StatusPendingPayment),
		ToStatus:    string(booking.StatusPaid),
		ChangedBy:   changedByClient,
		LineUserID:  b.LineUserID.String,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish booking paid message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	text := fmt.Sprintf(constant.PaymentReceivedTemplate, b.BookingCode)
	if in.Line != nil && b.LineUserID.Valid {
		if err = in.Line.Push(ctx, b.LineUserID.String, contract.LineMessage{Text: text}); err != nil {
			slog.ErrorContext(ctx, "failed to push payment message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		}
	}

	slog.InfoContext(ctx, "upload slip success", codeAttr, traceIdAttr)

	writeJSONResponse(w, http.StatusOK, model.UploadSlipResponse{
		BookingCode: b.BookingCode,
		Status:      string(booking.StatusPaid),
		Message:     text,
	})
}

func (in BookingHttp) receipt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	b, err := in.Querier.FindBookingByCode(ctx, r.PathValue("code"))
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errs.ErrBookingMissing)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := toBookingResponse(b)
	total := common.DecimalFromNumeric(b.TotalPrice)
	deposit := common.DecimalFromNumeric(b.DepositAmount)
	printer := in.Creator.Printer

	pdf, err := in.Receipts.Render(receipt.Data{
		BookingCode:   resp.BookingCode,
		CustomerName:  resp.CustomerName,
		PhoneNumber:   resp.PhoneNumber,
		AreaSize:      resp.AreaSize,
		CropType:      resp.CropType,
		SprayType:     resp.SprayType,
		ScheduledDate: resp.ScheduledDate,
		Notes:         resp.Notes,
		TotalPrice:    formatBaht(printer, total),
		DepositAmount: formatBaht(printer, deposit),
		Balance:       formatBaht(printer, total.Sub(deposit)),
		Status:        resp.Status,
		IssuedAt:      in.TimeNow(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to render receipt", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, b.BookingCode))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
