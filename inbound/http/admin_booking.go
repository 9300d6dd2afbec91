package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/contract"
	"agri-drone/common/errs"
	"agri-drone/common/jetstream"
	"agri-drone/common/otel"
	"agri-drone/core/booking"
	"agri-drone/model"
	"agri-drone/outbound/sqlgen"
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var (
	errDroneMissing      = errs.NotFound("Drone not found")
	errPilotMissing      = errs.NotFound("Pilot not found")
	errDroneUnavailable  = errs.Conflict("Drone is not available")
	errPilotInactive     = errs.Conflict("Pilot is not active")
	errBookingClosed     = errs.Conflict("Booking is already closed")
	errStatusChanged     = errs.Conflict("Booking status changed, please retry")
	errSlipNotOnFile     = errs.Conflict("Payment slip is required before marking paid")
	errInvalidStatusList = &errs.HttpError{Code: http.StatusBadRequest, Message: "Invalid status filter"}
)

type AdminBookingHttp struct {
	Db        contract.DbConn
	Querier   *sqlgen.Queries
	Publisher jetstream.Publisher
	Validate  *validator.Validate
}

func RegisterAdminBookingHttp(
	mux *http.ServeMux,
	adminAuth func(http.Handler) http.Handler,
	db contract.DbConn,
	querier *sqlgen.Queries,
	publisher jetstream.Publisher,
	validate *validator.Validate,
) *AdminBookingHttp {
	in := &AdminBookingHttp{
		Db:        db,
		Querier:   querier,
		Publisher: publisher,
		Validate:  validate,
	}

	mux.Handle("GET /api/admin/bookings", adminAuth(http.HandlerFunc(in.list)))
	mux.Handle("PATCH /api/admin/bookings/{code}/status", adminAuth(http.HandlerFunc(in.updateStatus)))
	mux.Handle("PATCH /api/admin/bookings/{code}/assignment", adminAuth(http.HandlerFunc(in.assign)))

	return in
}

func (in AdminBookingHttp) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	query := r.URL.Query()

	status := query.Get("status")
	if status != "" {
		if _, ok := booking.ParseStatus(status); !ok {
			writeErrorResponse(w, errInvalidStatusList)
			return
		}
	}

	limit, offset := int32(defaultListLimit), int32(0)
	if v := query.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			writeErrorResponse(w, errs.ErrInvalidRequest)
			return
		}
		limit = int32(min(n, maxListLimit))
	}
	if v := query.Get("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			writeErrorResponse(w, errs.ErrInvalidRequest)
			return
		}
		offset = int32(n)
	}

	rows, err := in.Querier.ListBookings(ctx, sqlgen.ListBookingsParams{Status: status, Limit: limit, Offset: offset})
	if err != nil {
		slog.ErrorContext(ctx, "failed to list bookings", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := model.ListBookingsResponse{Bookings: make([]model.BookingResponse, 0, len(rows))}
	for _, b := range rows {
		resp.Bookings = append(resp.Bookings, toBookingResponse(b))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in AdminBookingHttp) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminBookingHttp.updateStatus")
	defer span.End()

	code := r.PathValue("code")
	next := booking.Status(req.Status)
	admin := adminFromCtx(ctx)

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "update booking status receive request", slog.String(constant.LogFieldCode, code), slog.Any(constant.LogFieldPayload, req), traceIdAttr)

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

	current := booking.Status(b.Status)
	if !current.CanTransitionTo(next) {
		slog.DebugContext(ctx, "status transition rejected", traceIdAttr, slog.String("from", b.Status), slog.String("to", req.Status))
		writeErrorResponse(w, &errs.HttpError{
			Code:    http.StatusConflict,
			Message: "Invalid status transition",
			Data:    map[string]string{"from": b.Status, "to": req.Status},
		})
		return
	}

	if next == booking.StatusPaid && !b.SlipPath.Valid {
		slog.DebugContext(ctx, "paid rejected without slip", traceIdAttr)
		writeErrorResponse(w, errSlipNotOnFile)
		return
	}

	cmd, err := withTx.UpdateBookingStatus(ctx, sqlgen.UpdateBookingStatusParams{
		ID:         b.ID,
		FromStatus: b.Status,
		ToStatus:   req.Status,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to update booking status", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errStatusChanged)
		return
	}

	err = withTx.InsertBookingStatusHistory(ctx, sqlgen.InsertBookingStatusHistoryParams{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   req.Status,
		ChangedBy:  admin,
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

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectBookingStatusChanged, model.BookingStatusChangedEventMessage{
		BookingCode: b.BookingCode,
		FromStatus:  b.Status,
		ToStatus:    req.Status,
		ChangedBy:   admin,
		LineUserID:  b.LineUserID.String,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish status changed message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	b.Status = req.Status
	writeJSONResponse(w, http.StatusOK, toBookingResponse(b))
}

func (in AdminBookingHttp) assign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	ctx, span := otel.Tracer.Start(r.Context(), "AdminBookingHttp.assign")
	defer span.End()

	code := r.PathValue("code")
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "assign booking receive request", slog.String(constant.LogFieldCode, code), slog.Any(constant.LogFieldPayload, req), traceIdAttr)

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

	if booking.Status(b.Status).IsTerminal() {
		writeErrorResponse(w, errBookingClosed)
		return
	}

	drone, err := withTx.FindDroneByID(ctx, req.DroneID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errDroneMissing)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find drone", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if drone.Status == droneStatusMaintenance || drone.Status == droneStatusRetired {
		writeErrorResponse(w, errDroneUnavailable)
		return
	}

	pilot, err := withTx.FindPilotByID(ctx, req.PilotID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeErrorResponse(w, errPilotMissing)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to find pilot", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if !pilot.Active {
		writeErrorResponse(w, errPilotInactive)
		return
	}

	b.DroneID = pgtype.Int4{Int32: drone.ID, Valid: true}
	b.PilotID = pgtype.Int4{Int32: pilot.ID, Valid: true}

	cmd, err := withTx.AssignBooking(ctx, sqlgen.AssignBookingParams{ID: b.ID, DroneID: b.DroneID, PilotID: b.PilotID})
	if err != nil {
		slog.ErrorContext(ctx, "failed to assign booking", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	// the update skips closed bookings
	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errBookingClosed)
		return
	}

	if err = tx.Commit(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	err = common.PublishMessage(ctx, in.Publisher, constant.SubjectBookingAssigned, model.BookingAssignedEventMessage{
		BookingCode: b.BookingCode,
		DroneID:     drone.ID,
		PilotID:     pilot.ID,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish booking assigned message", traceIdAttr, slog.Any(constant.LogFieldErr, err))
	}

	writeJSONResponse(w, http.StatusOK, toBookingResponse(b))
}
