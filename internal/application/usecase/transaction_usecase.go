package usecase

import (
	"context"

	"github.com/jhoicas/stocktrack-api/internal/application/authz"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
	"github.com/jhoicas/stocktrack-api/pkg/textutil"
)

// TransactionUseCase orquesta las operaciones sobre el ledger de stock:
// autorización → motor de ledger → DTO.
type TransactionUseCase struct {
	gate         *authz.Gate
	engine       *ledger.Engine
	transactions repository.StockTransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	gate *authz.Gate,
	engine *ledger.Engine,
	transactions repository.StockTransactionRepository,
) *TransactionUseCase {
	return &TransactionUseCase{gate: gate, engine: engine, transactions: transactions}
}

// Apply registra un movimiento de stock (requiere stock:write).
func (uc *TransactionUseCase) Apply(ctx context.Context, userID, teamID string, in dto.ApplyTransactionRequest) (*dto.TransactionResponse, error) {
	grant, err := uc.gate.Authorize(authz.PermStockWrite, teamID, userID)
	if err != nil {
		return nil, err
	}

	txn, err := uc.engine.ApplyStockTransaction(ctx, ledger.Input{
		ItemID:                in.ItemID,
		TeamID:                teamID,
		Type:                  in.TransactionType,
		Quantity:              in.Quantity,
		UserID:                grant.User.ID,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
		Notes:                 in.Notes,
	})
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// List lista las transacciones del equipo con snapshots para mostrar.
// El filtro de texto libre cubre nombre/SKU/código de barras del artículo,
// email del usuario y nombres de ubicación; la query se normaliza (minúsculas,
// sin tildes) antes de llegar al repositorio.
func (uc *TransactionUseCase) List(userID, teamID, search string, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermTeamRead, teamID, userID); err != nil {
		return nil, err
	}
	page.DefaultPage()

	list, err := uc.transactions.Search(teamID, textutil.Fold(search), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionDetailResponse, 0, len(list))
	for _, d := range list {
		items = append(items, dto.TransactionDetailResponse{
			TransactionResponse:     toTransactionResponse(&d.StockTransaction),
			ItemName:                d.ItemName,
			ItemSKU:                 d.ItemSKU,
			ItemBarcode:             d.ItemBarcode,
			UserEmail:               d.UserEmail,
			SourceLocationName:      d.SourceLocationName,
			DestinationLocationName: d.DestinationLocationName,
		})
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una transacción scoped a (id, teamId). Devuelve deleted=false
// si la fila no existía (no es un error). El stock del artículo queda como
// está: el borrado saca la fila del historial sin revertir su efecto.
func (uc *TransactionUseCase) Delete(userID, teamID, transactionID string) (*dto.DeleteTransactionResponse, error) {
	if _, err := uc.gate.Authorize(authz.PermStockWrite, teamID, userID); err != nil {
		return nil, err
	}
	deleted, err := uc.transactions.Delete(transactionID, teamID)
	if err != nil {
		return nil, err
	}
	return &dto.DeleteTransactionResponse{Deleted: deleted}, nil
}

func toTransactionResponse(t *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:                    t.ID,
		ItemID:                t.ItemID,
		TeamID:                t.TeamID,
		TransactionType:       t.TransactionType,
		Quantity:              t.Quantity,
		UserID:                t.UserID,
		SourceLocationID:      t.SourceLocationID,
		DestinationLocationID: t.DestinationLocationID,
		Notes:                 t.Notes,
		CreatedAt:             dto.ISOTime(t.CreatedAt),
	}
}
