// Package memory implementa as portas de persistência sobre mapas em memória.
// Usado pelos testes de aplicação e de HTTP no lugar do PostgreSQL; o TxRunner
// reproduz a semântica comitar-ou-reverter com snapshot do estado.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// Ledger guarda produtos e movimentações em memória.
type Ledger struct {
	mu             sync.Mutex
	txMu           sync.Mutex
	products       map[string]*entity.Product
	movements      map[int64]*entity.Movement
	nextProductID  int64
	nextMovementID int64
}

// NewLedger cria um ledger vazio.
func NewLedger() *Ledger {
	return &Ledger{
		products:       make(map[string]*entity.Product),
		movements:      make(map[int64]*entity.Movement),
		nextProductID:  1,
		nextMovementID: 1,
	}
}

// Products devolve o repositório de produtos atado ao ledger.
func (l *Ledger) Products() repository.ProductRepository { return &productRepo{l: l} }

// Movements devolve o repositório de movimentações atado ao ledger.
func (l *Ledger) Movements() repository.MovementRepository { return &movementRepo{l: l} }

// TxRunner devolve um runner transacional sobre o ledger.
func (l *Ledger) TxRunner() stock.TxRunner { return &txRunner{l: l} }

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.Description = cloneString(p.Description)
	cp.Brand = cloneString(p.Brand)
	cp.Supplier = cloneString(p.Supplier)
	cp.ExpirationDate = cloneTime(p.ExpirationDate)
	return &cp
}

func cloneMovement(m *entity.Movement) *entity.Movement {
	cm := *m
	return &cm
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

type productRepo struct {
	l *Ledger
}

func (r *productRepo) Create(product *entity.Product) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	product.ID = r.l.nextProductID
	r.l.nextProductID++
	r.l.products[product.Name] = cloneProduct(product)
	return nil
}

func (r *productRepo) GetByName(name string) (*entity.Product, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	p, ok := r.l.products[name]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetByNameForUpdate em memória equivale a GetByName: a exclusão mútua vem do
// txMu do runner, que serializa transações inteiras.
func (r *productRepo) GetByNameForUpdate(name string) (*entity.Product, error) {
	return r.GetByName(name)
}

func (r *productRepo) Update(name string, product *entity.Product) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	existing, ok := r.l.products[name]
	if !ok {
		return nil
	}
	// Renomear para um nome já ocupado viola a unicidade, como a constraint
	// única do adaptador PostgreSQL.
	if product.Name != name {
		if _, taken := r.l.products[product.Name]; taken {
			return domain.ErrDuplicate
		}
	}
	updated := cloneProduct(product)
	updated.ID = existing.ID
	updated.Amount = existing.Amount
	updated.Code = existing.Code
	updated.CreatedAt = existing.CreatedAt
	delete(r.l.products, name)
	r.l.products[updated.Name] = updated
	return nil
}

func (r *productRepo) UpdateAmount(name string, amount int) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	if p, ok := r.l.products[name]; ok {
		p.Amount = amount
	}
	return nil
}

func (r *productRepo) Delete(name string) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	delete(r.l.products, name)
	return nil
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	all := make([]*entity.Product, 0, len(r.l.products))
	for _, p := range r.l.products {
		all = append(all, cloneProduct(p))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type movementRepo struct {
	l *Ledger
}

func (r *movementRepo) Create(movement *entity.Movement) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	movement.ID = r.l.nextMovementID
	r.l.nextMovementID++
	r.l.movements[movement.ID] = cloneMovement(movement)
	return nil
}

func (r *movementRepo) GetByID(id int64) (*entity.Movement, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	m, ok := r.l.movements[id]
	if !ok {
		return nil, nil
	}
	return cloneMovement(m), nil
}

func (r *movementRepo) Update(id int64, movement *entity.Movement) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	if _, ok := r.l.movements[id]; !ok {
		return nil
	}
	updated := cloneMovement(movement)
	updated.ID = id
	r.l.movements[id] = updated
	return nil
}

func (r *movementRepo) Delete(id int64) error {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	delete(r.l.movements, id)
	return nil
}

func (r *movementRepo) ListByProduct(productName string) ([]*entity.Movement, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	var list []*entity.Movement
	for _, m := range r.l.movements {
		if m.ProductName == productName {
			list = append(list, cloneMovement(m))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].MovedAt.Equal(list[j].MovedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].MovedAt.Before(list[j].MovedAt)
	})
	return list, nil
}

// txRunner serializa transações inteiras (lock mais grosso que o FOR UPDATE
// por produto do PostgreSQL, mas com a mesma garantia) e reverte o estado por
// snapshot quando fn retorna erro.
type txRunner struct {
	l *Ledger
}

func (t *txRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.l.txMu.Lock()
	defer t.l.txMu.Unlock()

	snapshot := t.l.snapshot()
	if err := fn(&movementRepo{l: t.l}, &productRepo{l: t.l}); err != nil {
		t.l.restore(snapshot)
		return err
	}
	return nil
}

type ledgerState struct {
	products       map[string]*entity.Product
	movements      map[int64]*entity.Movement
	nextProductID  int64
	nextMovementID int64
}

func (l *Ledger) snapshot() ledgerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	st := ledgerState{
		products:       make(map[string]*entity.Product, len(l.products)),
		movements:      make(map[int64]*entity.Movement, len(l.movements)),
		nextProductID:  l.nextProductID,
		nextMovementID: l.nextMovementID,
	}
	for k, p := range l.products {
		st.products[k] = cloneProduct(p)
	}
	for k, m := range l.movements {
		st.movements[k] = cloneMovement(m)
	}
	return st
}

func (l *Ledger) restore(st ledgerState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = st.products
	l.movements = st.movements
	l.nextProductID = st.nextProductID
	l.nextMovementID = st.nextMovementID
}
