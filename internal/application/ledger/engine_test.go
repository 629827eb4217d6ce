package ledger_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktrack-api/internal/application/ledger"
	"github.com/jhoicas/stocktrack-api/internal/domain"
	"github.com/jhoicas/stocktrack-api/internal/domain/entity"
	"github.com/jhoicas/stocktrack-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional: Run trabaja sobre una copia y
// solo la publica en commit, igual que la tx real de pgx.
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	items map[string]*entity.Item
	txns  map[string]*entity.StockTransaction
}

func newMemDB() *memDB {
	return &memDB{
		items: map[string]*entity.Item{},
		txns:  map[string]*entity.StockTransaction{},
	}
}

func (d *memDB) clone() *memDB {
	c := newMemDB()
	for id, it := range d.items {
		cp := *it
		c.items[id] = &cp
	}
	for id, tx := range d.txns {
		cp := *tx
		c.txns[id] = &cp
	}
	return c
}

type memTxRunner struct {
	db *memDB
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	staging := r.db.clone()
	if err := fn(&memTxnRepo{db: staging}, &memItemRepo{db: staging}); err != nil {
		return err // rollback: staging se descarta
	}
	*r.db = *staging
	return nil
}

type memTxnRepo struct{ db *memDB }

func (r *memTxnRepo) Create(t *entity.StockTransaction) error {
	cp := *t
	r.db.txns[t.ID] = &cp
	return nil
}

func (r *memTxnRepo) GetByID(id, teamID string) (*entity.StockTransaction, error) {
	t, ok := r.db.txns[id]
	if !ok || t.TeamID != teamID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memTxnRepo) Search(teamID, _ string, _, _ int) ([]*entity.StockTransactionDetail, error) {
	var out []*entity.StockTransactionDetail
	for _, t := range r.db.txns {
		if t.TeamID == teamID {
			out = append(out, &entity.StockTransactionDetail{StockTransaction: *t})
		}
	}
	return out, nil
}

func (r *memTxnRepo) Delete(id, teamID string) (bool, error) {
	t, ok := r.db.txns[id]
	if !ok || t.TeamID != teamID {
		return false, nil
	}
	delete(r.db.txns, id)
	return true, nil
}

type memItemRepo struct{ db *memDB }

func (r *memItemRepo) Create(it *entity.Item) error {
	cp := *it
	r.db.items[it.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(id, teamID string) (*entity.Item, error) {
	it, ok := r.db.items[id]
	if !ok || it.TeamID != teamID {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *memItemRepo) GetForUpdate(id, teamID string) (*entity.Item, error) {
	return r.GetByID(id, teamID)
}

func (r *memItemRepo) ListByTeam(teamID string, _, _ int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.db.items {
		if it.TeamID == teamID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) Update(it *entity.Item) error {
	cur, ok := r.db.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cur.Name, cur.SKU, cur.Barcode = it.Name, it.SKU, it.Barcode
	cur.LocationID = it.LocationID
	cur.UpdatedAt = it.UpdatedAt
	return nil
}

func (r *memItemRepo) UpdateStock(id string, stock decimal.Decimal, locationID *string, updatedAt time.Time) error {
	cur, ok := r.db.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	cur.CurrentStock = stock
	cur.LocationID = locationID
	cur.UpdatedAt = updatedAt
	return nil
}

func (r *memItemRepo) Delete(id, teamID string) (bool, error) {
	it, ok := r.db.items[id]
	if !ok || it.TeamID != teamID {
		return false, nil
	}
	delete(r.db.items, id)
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testTeamID = "team-1"
	testItemID = "item-1"
	testUserID = "user-1"
)

func newEngine(t *testing.T, stock int64) (*ledger.Engine, *memDB) {
	t.Helper()
	db := newMemDB()
	db.items[testItemID] = &entity.Item{
		ID:              testItemID,
		TeamID:          testTeamID,
		Name:            "Tornillo 3/8",
		SKU:             "TOR-038",
		InitialQuantity: decimal.NewFromInt(stock),
		CurrentStock:    decimal.NewFromInt(stock),
	}
	return ledger.NewEngine(&memTxRunner{db: db}), db
}

func apply(t *testing.T, e *ledger.Engine, in ledger.Input) (*entity.StockTransaction, error) {
	t.Helper()
	in.ItemID = testItemID
	in.TeamID = testTeamID
	in.UserID = testUserID
	return e.ApplyStockTransaction(context.Background(), in)
}

func currentStock(db *memDB) decimal.Decimal {
	return db.items[testItemID].CurrentStock
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Semántica por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_StockInSumaYActualizaUbicacion(t *testing.T) {
	e, db := newEngine(t, 5)

	txn, err := apply(t, e, ledger.Input{
		Type:                  entity.TransactionStockIn,
		Quantity:              decimal.NewFromInt(10),
		DestinationLocationID: strPtr("loc-b"),
	})
	require.NoError(t, err)
	require.NotNil(t, txn)

	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(15)), "5 + 10 = 15")
	require.NotNil(t, db.items[testItemID].LocationID)
	assert.Equal(t, "loc-b", *db.items[testItemID].LocationID)
	assert.Len(t, db.txns, 1, "debe quedar una fila en el ledger")
}

func TestApply_StockOutResta(t *testing.T) {
	e, db := newEngine(t, 8)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionStockOut,
		Quantity: decimal.NewFromInt(3),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(5)))
}

// Escenario de referencia: 5 → stock_in 10 → 15 → stock_out 20 rechazado,
// el stock sigue en 15 y no queda fila nueva en el ledger.
func TestApply_StockOutInsuficienteRechazaSinEscribirNada(t *testing.T) {
	e, db := newEngine(t, 5)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionStockIn,
		Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.True(t, currentStock(db).Equal(decimal.NewFromInt(15)))
	rowsBefore := len(db.txns)

	_, err = apply(t, e, ledger.Input{
		Type:     entity.TransactionStockOut,
		Quantity: decimal.NewFromInt(20),
	})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok, "el rechazo debe ser un AppError tipado")
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, domain.CodeInsufficientStock, appErr.Code)

	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(15)), "el stock no debe cambiar")
	assert.Equal(t, rowsBefore, len(db.txns), "la fila insertada debe caer con el rollback")
}

func TestApply_StockOutExactoDejaCero(t *testing.T) {
	e, db := newEngine(t, 4)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionStockOut,
		Quantity: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(db).IsZero())
}

func TestApply_AdjustFijaValorAbsoluto(t *testing.T) {
	e, db := newEngine(t, 100)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionAdjust,
		Quantity: decimal.NewFromInt(7),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(7)), "adjust fija, no suma")
}

func TestApply_AdjustACeroEsValido(t *testing.T) {
	e, db := newEngine(t, 12)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionAdjust,
		Quantity: decimal.Zero,
	})
	require.NoError(t, err)
	assert.True(t, currentStock(db).IsZero())
}

func TestApply_CountActuaComoAdjust(t *testing.T) {
	e, db := newEngine(t, 3)

	_, err := apply(t, e, ledger.Input{
		Type:     entity.TransactionCount,
		Quantity: decimal.NewFromInt(9),
	})
	require.NoError(t, err)
	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(9)))
}

// move cambia la ubicación, no el stock; origen y destino quedan en la fila.
func TestApply_MoveCambiaUbicacionNoStock(t *testing.T) {
	e, db := newEngine(t, 8)
	db.items[testItemID].LocationID = strPtr("loc-a")

	txn, err := apply(t, e, ledger.Input{
		Type:                  entity.TransactionMove,
		Quantity:              decimal.NewFromInt(3),
		SourceLocationID:      strPtr("loc-a"),
		DestinationLocationID: strPtr("loc-b"),
	})
	require.NoError(t, err)

	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(8)), "move no toca el stock")
	require.NotNil(t, db.items[testItemID].LocationID)
	assert.Equal(t, "loc-b", *db.items[testItemID].LocationID)

	// Ambas ubicaciones quedan registradas para auditoría
	require.NotNil(t, txn.SourceLocationID)
	require.NotNil(t, txn.DestinationLocationID)
	assert.Equal(t, "loc-a", *txn.SourceLocationID)
	assert.Equal(t, "loc-b", *txn.DestinationLocationID)
}

func TestApply_MoveSinDestinoDejaUbicacionIgual(t *testing.T) {
	e, db := newEngine(t, 8)
	db.items[testItemID].LocationID = strPtr("loc-a")

	_, err := apply(t, e, ledger.Input{
		Type:             entity.TransactionMove,
		Quantity:         decimal.NewFromInt(1),
		SourceLocationID: strPtr("loc-a"),
	})
	require.NoError(t, err)
	require.NotNil(t, db.items[testItemID].LocationID)
	assert.Equal(t, "loc-a", *db.items[testItemID].LocationID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y bordes
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_TipoDesconocidoRechazado(t *testing.T) {
	e, db := newEngine(t, 5)

	_, err := apply(t, e, ledger.Input{Type: "restock", Quantity: decimal.NewFromInt(1)})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeValidation, appErr.Code)
	assert.Empty(t, db.txns)
}

func TestApply_CantidadNoPositivaRechazada(t *testing.T) {
	e, _ := newEngine(t, 5)

	for _, tipo := range []string{entity.TransactionStockIn, entity.TransactionStockOut, entity.TransactionMove} {
		_, err := apply(t, e, ledger.Input{Type: tipo, Quantity: decimal.Zero})
		require.Error(t, err, "quantity 0 inválida para %s", tipo)

		appErr, ok := domain.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, domain.CodeValidation, appErr.Code)
	}
}

func TestApply_AdjustNegativoRechazado(t *testing.T) {
	e, _ := newEngine(t, 5)

	_, err := apply(t, e, ledger.Input{Type: entity.TransactionAdjust, Quantity: decimal.NewFromInt(-1)})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeValidation, appErr.Code)
}

func TestApply_ArticuloInexistenteRevierteLaInsercion(t *testing.T) {
	db := newMemDB() // sin artículos
	e := ledger.NewEngine(&memTxRunner{db: db})

	_, err := e.ApplyStockTransaction(context.Background(), ledger.Input{
		ItemID:   "no-existe",
		TeamID:   testTeamID,
		UserID:   testUserID,
		Type:     entity.TransactionStockIn,
		Quantity: decimal.NewFromInt(1),
	})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeItemNotFound, appErr.Code)
	assert.Empty(t, db.txns, "el rollback debe descartar la fila del ledger")
}

func TestApply_ArticuloDeOtroEquipoNoVisible(t *testing.T) {
	e, db := newEngine(t, 5)

	_, err := e.ApplyStockTransaction(context.Background(), ledger.Input{
		ItemID:   testItemID,
		TeamID:   "otro-equipo",
		UserID:   testUserID,
		Type:     entity.TransactionStockIn,
		Quantity: decimal.NewFromInt(1),
	})
	require.Error(t, err)

	appErr, ok := domain.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.CodeItemNotFound, appErr.Code)
	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(5)))
}

// Identidad del stock: currentStock == replay de todas las transacciones
// desde initialQuantity, con adjust/count reiniciando la base.
func TestApply_IdentidadDeReplay(t *testing.T) {
	e, db := newEngine(t, 5)

	ops := []ledger.Input{
		{Type: entity.TransactionStockIn, Quantity: decimal.NewFromInt(10)},  // 15
		{Type: entity.TransactionStockOut, Quantity: decimal.NewFromInt(4)},  // 11
		{Type: entity.TransactionCount, Quantity: decimal.NewFromInt(20)},    // 20
		{Type: entity.TransactionStockOut, Quantity: decimal.NewFromInt(6)},  // 14
		{Type: entity.TransactionMove, Quantity: decimal.NewFromInt(2), DestinationLocationID: strPtr("loc-z")}, // 14
		{Type: entity.TransactionAdjust, Quantity: decimal.NewFromInt(3)},    // 3
		{Type: entity.TransactionStockIn, Quantity: decimal.NewFromInt(1)},   // 4
	}
	for _, op := range ops {
		_, err := apply(t, e, op)
		require.NoError(t, err)
	}

	assert.True(t, currentStock(db).Equal(decimal.NewFromInt(4)))
	assert.Len(t, db.txns, len(ops), "cada operación aceptada deja exactamente una fila")
}
