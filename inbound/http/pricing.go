package http

import (
	"agri-drone/common"
	"agri-drone/common/constant"
	"agri-drone/common/errs"
	"agri-drone/common/vars"
	"agri-drone/model"
	"agri-drone/outbound/sqlgen"
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"log/slog"
	"net/http"
	"strings"
)

var (
	errPriceKind        = &errs.HttpError{Code: http.StatusBadRequest, Message: "Price kind must be crop or spray"}
	errPriceItemMissing = errs.NotFound("Price item not found")
)

// PriceRefresher reloads the shared price table after an edit.
type PriceRefresher interface {
	Refresh(ctx context.Context) error
}

type PricingHttp struct {
	Querier   *sqlgen.Queries
	Validate  *validator.Validate
	Refresher PriceRefresher

	depositRate decimal.Decimal
}

func RegisterPricingHttp(
	mux *http.ServeMux,
	adminAuth func(http.Handler) http.Handler,
	querier *sqlgen.Queries,
	validate *validator.Validate,
	refresher PriceRefresher,
	depositRate decimal.Decimal,
) *PricingHttp {
	in := &PricingHttp{
		Querier:     querier,
		Validate:    validate,
		Refresher:   refresher,
		depositRate: depositRate,
	}

	mux.HandleFunc("GET /api/prices", in.list)

	mux.Handle("GET /api/admin/prices/{kind}", adminAuth(http.HandlerFunc(in.listKind)))
	mux.Handle("POST /api/admin/prices/{kind}", adminAuth(http.HandlerFunc(in.upsert)))
	mux.Handle("PUT /api/admin/prices/{kind}/{key}", adminAuth(http.HandlerFunc(in.upsert)))
	mux.Handle("DELETE /api/admin/prices/{kind}/{key}", adminAuth(http.HandlerFunc(in.deactivate)))

	return in
}

func (in *PricingHttp) list(w http.ResponseWriter, r *http.Request) {
	table := vars.GetPriceTable()
	if table == nil {
		writeErrorResponse(w, errPriceTableUnavailable)
		return
	}

	writeJSONResponse(w, http.StatusOK, priceListResponse(table, in.depositRate))
}

func priceKind(r *http.Request) (string, bool) {
	kind := r.PathValue("kind")
	return kind, kind == constant.PriceKindCrop || kind == constant.PriceKindSpray
}

func (in *PricingHttp) listKind(w http.ResponseWriter, r *http.Request) {
	kind, ok := priceKind(r)
	if !ok {
		writeErrorResponse(w, errPriceKind)
		return
	}

	ctx := r.Context()
	rows, err := in.Querier.ListPriceItemsByKind(ctx, kind)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list price items", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	resp := model.ListPriceItemsResponse{Items: make([]model.PriceItemResponse, 0, len(rows))}
	for _, item := range rows {
		resp.Items = append(resp.Items, toPriceItemResponse(item))
	}

	writeJSONResponse(w, http.StatusOK, resp)
}

func (in *PricingHttp) upsert(w http.ResponseWriter, r *http.Request) {
	kind, ok := priceKind(r)
	if !ok {
		writeErrorResponse(w, errPriceKind)
		return
	}

	var req model.UpsertPriceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errs.ErrInvalidRequest)
		return
	}

	if key := r.PathValue("key"); key != "" {
		req.Key = key
	}
	req.Key = strings.TrimSpace(req.Key)

	if err := in.Validate.Struct(req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	price, err := parseAmount(req.PricePerRai, "PricePerRai", true)
	if err != nil {
		writeErrorResponse(w, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)
	slog.InfoContext(ctx, "upsert price item receive request", slog.String("kind", kind), slog.Any(constant.LogFieldPayload, req), traceIdAttr)

	item, err := in.Querier.UpsertPriceItem(ctx, sqlgen.UpsertPriceItemParams{
		Kind:        kind,
		Key:         req.Key,
		Name:        req.Name,
		PricePerRai: common.NumericFromDecimal(price.Round(2)),
		SortOrder:   req.SortOrder,
		Active:      active,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upsert price item", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	in.refresh(ctx)

	writeJSONResponse(w, http.StatusOK, toPriceItemResponse(item))
}

func (in *PricingHttp) deactivate(w http.ResponseWriter, r *http.Request) {
	kind, ok := priceKind(r)
	if !ok {
		writeErrorResponse(w, errPriceKind)
		return
	}

	ctx := r.Context()
	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	cmd, err := in.Querier.DeactivatePriceItem(ctx, sqlgen.DeactivatePriceItemParams{Kind: kind, Key: r.PathValue("key")})
	if err != nil {
		slog.ErrorContext(ctx, "failed to deactivate price item", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		writeErrorResponse(w, err)
		return
	}

	if cmd.RowsAffected() == 0 {
		writeErrorResponse(w, errPriceItemMissing)
		return
	}

	in.refresh(ctx)

	w.WriteHeader(http.StatusNoContent)
}

func (in *PricingHttp) refresh(ctx context.Context) {
	if in.Refresher == nil {
		return
	}

	if err := in.Refresher.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to refresh price table", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
	}
}
