// Package catalog provides an in-memory implementation of the catalog
// reader interfaces. Persistence of the price book belongs to an outer
// system; the pricing service only needs a read-mostly snapshot, which
// this adapter serves safely to concurrent pricing goroutines.
package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/WillieIlus/printy/internal/domain/entity"
	"github.com/WillieIlus/printy/internal/domain/repository"
)

// catalogKey identifies a price rule by machine plus a second dimension
// (sheet size or material).
type catalogKey struct {
	machineID uuid.UUID
	otherID   uuid.UUID
}

// Memory is an in-memory catalog implementing both
// repository.PriceCatalogReader and repository.FinishingCatalogReader.
type Memory struct {
	mu sync.RWMutex

	bySheetSize map[catalogKey]*entity.PriceRule
	byMaterial  map[catalogKey]*entity.PriceRule

	// byMachine preserves insertion order so AnyForMachine is
	// deterministic (first configured rule wins).
	byMachine map[uuid.UUID][]*entity.PriceRule

	finishing map[uuid.UUID]*entity.FinishingRule
}

// Compile-time interface checks.
var (
	_ repository.PriceCatalogReader     = (*Memory)(nil)
	_ repository.FinishingCatalogReader = (*Memory)(nil)
)

// NewMemory creates an empty in-memory catalog.
//
// Returns:
//   - *Memory: the empty catalog
func NewMemory() *Memory {
	return &Memory{
		bySheetSize: make(map[catalogKey]*entity.PriceRule),
		byMaterial:  make(map[catalogKey]*entity.PriceRule),
		byMachine:   make(map[uuid.UUID][]*entity.PriceRule),
		finishing:   make(map[uuid.UUID]*entity.FinishingRule),
	}
}

// AddPriceRule registers a price rule under its machine/material key and,
// when the rule is bound to a sheet size, under the machine/sheet key too.
//
// Parameters:
//   - rule: the rule to register (copied; the catalog owns its copy)
func (m *Memory) AddPriceRule(rule entity.PriceRule) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := rule
	if r.Sheet != nil {
		m.bySheetSize[catalogKey{r.MachineID, r.Sheet.ID}] = &r
	}
	if r.MaterialID != uuid.Nil {
		m.byMaterial[catalogKey{r.MachineID, r.MaterialID}] = &r
	}
	m.byMachine[r.MachineID] = append(m.byMachine[r.MachineID], &r)
}

// AddFinishingRule registers a finishing rule by its ID.
//
// Parameters:
//   - rule: the rule to register (copied; the catalog owns its copy)
func (m *Memory) AddFinishingRule(rule entity.FinishingRule) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r := rule
	m.finishing[r.ID] = &r
}

// BySheetSize implements repository.PriceCatalogReader.
func (m *Memory) BySheetSize(_ context.Context, machineID, sheetSizeID uuid.UUID) (*entity.PriceRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rule, ok := m.bySheetSize[catalogKey{machineID, sheetSizeID}]; ok {
		return rule, nil
	}
	return nil, repository.ErrPriceRuleNotFound
}

// ByMaterial implements repository.PriceCatalogReader.
func (m *Memory) ByMaterial(_ context.Context, machineID, materialID uuid.UUID) (*entity.PriceRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rule, ok := m.byMaterial[catalogKey{machineID, materialID}]; ok {
		return rule, nil
	}
	return nil, repository.ErrPriceRuleNotFound
}

// AnyForMachine implements repository.PriceCatalogReader.
func (m *Memory) AnyForMachine(_ context.Context, machineID uuid.UUID) (*entity.PriceRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rules := m.byMachine[machineID]
	if len(rules) == 0 {
		return nil, repository.ErrPriceRuleNotFound
	}
	return rules[0], nil
}

// FinishingRule implements repository.FinishingCatalogReader.
func (m *Memory) FinishingRule(_ context.Context, serviceID uuid.UUID) (*entity.FinishingRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if rule, ok := m.finishing[serviceID]; ok {
		return rule, nil
	}
	return nil, repository.ErrFinishingRuleNotFound
}
