package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ListTransactions lista asientos del libro con filtros y paginación.
func (uc *UseCase) ListTransactions(ctx context.Context, filter repository.TransactionFilter) (*dto.TransactionListResponse, error) {
	list, err := uc.txRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// StockLevels devuelve el stock disponible por partición, derivado del libro.
// locationID vacío incluye todas las ubicaciones.
func (uc *UseCase) StockLevels(ctx context.Context, locationID string) ([]dto.StockLevelDTO, error) {
	rows, err := uc.txRepo.StockLevels(locationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockLevelDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockLevelDTO{
			ItemID:      r.ItemID,
			ItemName:    r.ItemName,
			VariantID:   r.VariantID,
			VariantName: r.VariantName,
			LocationID:  r.LocationID,
			Location:    r.Location,
			OnHand:      r.OnHand,
		})
	}
	return out, nil
}

// UsageByEvent devuelve el total de salidas atribuidas a un evento por
// item/variante, ordenado de mayor a menor.
func (uc *UseCase) UsageByEvent(ctx context.Context, eventID string) ([]dto.EventUsageDTO, error) {
	event, err := uc.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.txRepo.UsageByEvent(eventID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventUsageDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EventUsageDTO{
			ItemID:      r.ItemID,
			ItemName:    r.ItemName,
			VariantID:   r.VariantID,
			VariantName: r.VariantName,
			TotalOut:    r.TotalOut,
		})
	}
	return out, nil
}

// OpenAlerts lista las alertas de stock bajo sin resolver.
func (uc *UseCase) OpenAlerts(ctx context.Context, limit, offset int) ([]dto.LowStockAlertResponse, error) {
	list, err := uc.alertRepo.ListOpen(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockAlertResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.LowStockAlertResponse{
			ID:          a.ID,
			ItemID:      a.ItemID,
			VariantID:   a.ItemVariantID,
			LocationID:  a.LocationID,
			Threshold:   a.Threshold,
			TriggeredAt: a.TriggeredAt,
			ResolvedAt:  a.ResolvedAt,
		})
	}
	return out, nil
}
