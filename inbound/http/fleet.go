package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/errs"
	"agri-drone/model"
	"agri-drone/outbound/sqlgen"
	"encoding/json"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
	"strings"
)

const (
	droneStatusAvailable   = "available"
	droneStatusMaintenance = "maintenance"
	droneStatusRetired     = "retired"

	equipmentStatusAvailable = "available"
)

var (
	errEquipmentMissing = errs.NotFound("Equipment not found")
	errDuplicate        = errs.Conflict("Record already exists")
	errInUse            = errs.Conflict("Record is referenced by a booking")
)

const foreignKeyViolation = "23503"

// FleetHttp manages drones, pilots and rental equipment.
type FleetHttp struct {
	Querier  *sqlgen.Queries
	Validate *validator.Validate
}

func RegisterFleetHttp(
	mux *http.ServeMux,
	adminAuth func(http.Handler) http.Handler,
	querier *sqlgen.Queries,
	validate *validator.Validate,
) *FleetHttp {
	in := &FleetHttp{Querier: querier, Validate: validate}

	mux.Handle("GET /api/admin/drones", adminAuth(http.HandlerFunc(in.listDrones)))
	mux.Handle("POST /api/admin/drones", adminAuth(http.HandlerFunc(in.createDrone)))
	mux.Handle("PUT /api/admin/drones/{id}", adminAuth(http.HandlerFunc(in.updateDrone)))
	mux.Handle("DELETE /api/admin/drones/{id}", adminAuth(http.HandlerFunc(in.deleteDrone)))

	mux.Handle("GET /api/admin/pilots", adminAuth(http.HandlerFunc(in.listPilots)))
	mux.Handle("POST /api/admin/pilots", adminAuth(http.HandlerFunc(in.createPilot)))
	mux.Handle("PUT /api/admin/pilots/{id}", adminAuth(http.HandlerFunc(in.updatePilot)))
	mux.Handle("DELETE /api/admin/pilots/{id}", adminAuth(http.HandlerFunc(in.deletePilot)))

	mux.Handle("GET /api/admin/equipment", adminAuth(http.HandlerFunc(in.listEquipment)))
	mux.Handle("POST /api/admin/equipment", adminAuth(http.HandlerFunc(in.createEquipment)))
	mux.Handle("PUT /api/admin/equipment/{id}", adminAuth(http.HandlerFunc(in.updateEquipment)))
	mux.Handle("DELETE /api/admin/equipment/{id}", adminAuth(http.HandlerFunc(in.deleteEquipment)))

	return in
}

// storeError maps constraint violations to client errors.
func storeError(err error, missing *errs.HttpError) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return missing
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return errDuplicate
		case foreignKeyViolation:
			return errInUse
		}
	}

	return err
}

func parseAmount(s model.NumericString, field string, required bool) (decimal.Decimal, error) {
	if strings.TrimSpace(s.String()) == "" && !required {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s.String()))
	if err != nil || d.IsNegative() {
		return decimal.Zero, &errs.HttpError{
			Code:    http.StatusBadRequest,
			Message: "Validation failed",
			Data:    map[string]string{field: "number"},
		}
	}

	return d, nil
}

func (in FleetHttp) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return false
	}

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return false
	}

	return true
}

func (in FleetHttp) fail(w http.ResponseWriter, r *http.Request, msg string, err error, missing *errs.HttpError) {
	mapped := storeError(err, missing)
	if _, ok := mapped.(*errs.HttpError); !ok {
		slog.ErrorContext(r.Context(), msg, common.ExtractTraceIDFromCtx(r.Context()), slog.Any(constant.LogFieldErr, err))
	}
	writeErrorResponse(w, mapped)
}

func toDroneResponse(d sqlgen.Drone) model.DroneResponse {
	return model.DroneResponse{
		Id:           d.ID,
		SerialNumber: d.SerialNumber,
		Model:        d.Model,
		TankLiters:   common.DecimalFromNumeric(d.TankLiters).String(),
		Status:       d.Status,
	}
}

func (in FleetHttp) listDrones(w http.ResponseWriter, r *http.Request) {
	rows, err := in.Querier.ListDrones(r.Context())
	if err != nil {
		in.fail(w, r, "failed to list drones", err, errDroneMissing)
		return
	}

	resp := make([]model.DroneResponse, 0, len(rows))
	for _, d := range rows {
		resp = append(resp, toDroneResponse(d))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in FleetHttp) droneParams(w http.ResponseWriter, r *http.Request) (sqlgen.UpdateDroneParams, bool) {
	var req model.DroneRequest
	if !in.decode(w, r, &req) {
		return sqlgen.UpdateDroneParams{}, false
	}

	tank, err := parseAmount(req.TankLiters, "TankLiters", false)
	if err != nil {
		writeErrorResponse(w, err)
		return sqlgen.UpdateDroneParams{}, false
	}

	status := req.Status
	if status == "" {
		status = droneStatusAvailable
	}

	return sqlgen.UpdateDroneParams{
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		TankLiters:   common.NumericFromDecimal(tank),
		Status:       status,
	}, true
}

func (in FleetHttp) createDrone(w http.ResponseWriter, r *http.Request) {
	params, ok := in.droneParams(w, r)
	if !ok {
		return
	}

	d, err := in.Querier.CreateDrone(r.Context(), sqlgen.CreateDroneParams{
		SerialNumber: params.SerialNumber,
		Model:        params.Model,
		TankLiters:   params.TankLiters,
		Status:       params.Status,
	})
	if err != nil {
		in.fail(w, r, "failed to create drone", err, errDroneMissing)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toDroneResponse(d))
}

func (in FleetHttp) updateDrone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	params, ok := in.droneParams(w, r)
	if !ok {
		return
	}
	params.ID = id

	d, err := in.Querier.UpdateDrone(r.Context(), params)
	if err != nil {
		in.fail(w, r, "failed to update drone", err, errDroneMissing)
		return
	}

	writeJSONResponse(w, http.StatusOK, toDroneResponse(d))
}

func (in FleetHttp) deleteDrone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	cmd, err := in.Querier.DeleteDrone(r.Context(), id)
	if err != nil {
		in.fail(w, r, "failed to delete drone", err, errDroneMissing)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errDroneMissing)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toPilotResponse(p sqlgen.Pilot) model.PilotResponse {
	return model.PilotResponse{
		Id:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		LicenseNo: p.LicenseNo,
		Active:    p.Active,
	}
}

func (in FleetHttp) listPilots(w http.ResponseWriter, r *http.Request) {
	rows, err := in.Querier.ListPilots(r.Context())
	if err != nil {
		in.fail(w, r, "failed to list pilots", err, errPilotMissing)
		return
	}

	resp := make([]model.PilotResponse, 0, len(rows))
	for _, p := range rows {
		resp = append(resp, toPilotResponse(p))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in FleetHttp) pilotParams(w http.ResponseWriter, r *http.Request) (sqlgen.UpdatePilotParams, bool) {
	var req model.PilotRequest
	if !in.decode(w, r, &req) {
		return sqlgen.UpdatePilotParams{}, false
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return sqlgen.UpdatePilotParams{
		Name:      req.Name,
		Phone:     req.Phone,
		LicenseNo: req.LicenseNo,
		Active:    active,
	}, true
}

func (in FleetHttp) createPilot(w http.ResponseWriter, r *http.Request) {
	params, ok := in.pilotParams(w, r)
	if !ok {
		return
	}

	p, err := in.Querier.CreatePilot(r.Context(), sqlgen.CreatePilotParams{
		Name:      params.Name,
		Phone:     params.Phone,
		LicenseNo: params.LicenseNo,
		Active:    params.Active,
	})
	if err != nil {
		in.fail(w, r, "failed to create pilot", err, errPilotMissing)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toPilotResponse(p))
}

func (in FleetHttp) updatePilot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	params, ok := in.pilotParams(w, r)
	if !ok {
		return
	}
	params.ID = id

	p, err := in.Querier.UpdatePilot(r.Context(), params)
	if err != nil {
		in.fail(w, r, "failed to update pilot", err, errPilotMissing)
		return
	}

	writeJSONResponse(w, http.StatusOK, toPilotResponse(p))
}

func (in FleetHttp) deletePilot(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	cmd, err := in.Querier.DeletePilot(r.Context(), id)
	if err != nil {
		in.fail(w, r, "failed to delete pilot", err, errPilotMissing)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errPilotMissing)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEquipmentResponse(e sqlgen.Equipment) model.EquipmentResponse {
	return model.EquipmentResponse{
		Id:        e.ID,
		Name:      e.Name,
		Category:  e.Category,
		DailyRate: money(common.DecimalFromNumeric(e.DailyRate)),
		Status:    e.Status,
	}
}

func (in FleetHttp) listEquipment(w http.ResponseWriter, r *http.Request) {
	rows, err := in.Querier.ListEquipment(r.Context())
	if err != nil {
		in.fail(w, r, "failed to list equipment", err, errEquipmentMissing)
		return
	}

	resp := make([]model.EquipmentResponse, 0, len(rows))
	for _, e := range rows {
		resp = append(resp, toEquipmentResponse(e))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in FleetHttp) equipmentParams(w http.ResponseWriter, r *http.Request) (sqlgen.UpdateEquipmentParams, bool) {
	var req model.EquipmentRequest
	if !in.decode(w, r, &req) {
		return sqlgen.UpdateEquipmentParams{}, false
	}

	rate, err := parseAmount(req.DailyRate, "DailyRate", true)
	if err != nil {
		writeErrorResponse(w, err)
		return sqlgen.UpdateEquipmentParams{}, false
	}

	status := req.Status
	if status == "" {
		status = equipmentStatusAvailable
	}

	return sqlgen.UpdateEquipmentParams{
		Name:      req.Name,
		Category:  req.Category,
		DailyRate: common.NumericFromDecimal(rate.Round(2)),
		Status:    status,
	}, true
}

func (in FleetHttp) createEquipment(w http.ResponseWriter, r *http.Request) {
	params, ok := in.equipmentParams(w, r)
	if !ok {
		return
	}

	e, err := in.Querier.CreateEquipment(r.Context(), sqlgen.CreateEquipmentParams{
		Name:      params.Name,
		Category:  params.Category,
		DailyRate: params.DailyRate,
		Status:    params.Status,
	})
	if err != nil {
		in.fail(w, r, "failed to create equipment", err, errEquipmentMissing)
		return
	}

	writeJSONResponse(w, http.StatusCreated, toEquipmentResponse(e))
}

func (in FleetHttp) updateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	params, ok := in.equipmentParams(w, r)
	if !ok {
		return
	}
	params.ID = id

	e, err := in.Querier.UpdateEquipment(r.Context(), params)
	if err != nil {
		in.fail(w, r, "failed to update equipment", err, errEquipmentMissing)
		return
	}

	writeJSONResponse(w, http.StatusOK, toEquipmentResponse(e))
}

func (in FleetHttp) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	cmd, err := in.Querier.DeleteEquipment(r.Context(), id)
	if err != nil {
		in.fail(w, r, "failed to delete equipment", err, errEquipmentMissing)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errEquipmentMissing)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
