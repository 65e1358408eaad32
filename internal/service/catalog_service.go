package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DtronicE/menu-magic-offline/internal/domain"
)

type CatalogService struct {
	menu      MenuRepository
	publisher ChangePublisher
}

func NewCatalogService(menu MenuRepository, publisher ChangePublisher) *CatalogService {
	return &CatalogService{menu: menu, publisher: publisher}
}

func (s *CatalogService) ListItems() ([]domain.MenuItem, error) {
	return s.menu.ListMenuItems()
}

func (s *CatalogService) GetItem(id string) (*domain.MenuItem, error) {
	return s.menu.GetMenuItem(id)
}

// Filter matches query case-insensitively against name, description and
// category, and composes it with an exact category filter. "all" (or an
// empty category) means no category filtering.
func (s *CatalogService) Filter(query, category string) ([]domain.MenuItem, error) {
	items, err := s.menu.ListMenuItems()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Name), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Category), q) {
			continue
		}
		if category != "" && category != "all" && item.Category != category {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *CatalogService) Categories() ([]string, error) {
	items, err := s.menu.ListMenuItems()
	if err != nil {
		return nil, err
	}
	categories := []string{"all"}
	seen := make(map[string]bool)
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

// PartitionAvailability splits items into available and unavailable
// sets, preserving order. The partition is disjoint and exhaustive.
func PartitionAvailability(items []domain.MenuItem) (available, unavailable []domain.MenuItem) {
	available = make([]domain.MenuItem, 0, len(items))
	unavailable = make([]domain.MenuItem, 0)
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		} else {
			unavailable = append(unavailable, item)
		}
	}
	return available, unavailable
}

func (s *CatalogService) SetAvailability(ctx context.Context, id string, available bool) error {
	affected, err := s.menu.SetAvailability(id, available)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}
	s.publishChange(ctx, domain.TableMenuItems, id)
	return nil
}

func (s *CatalogService) SetEstimatedTime(ctx context.Context, id string, minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: estimated time must be positive, got %d", domain.ErrInvalidArgument, minutes)
	}
	affected, err := s.menu.SetEstimatedTime(id, minutes)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: menu item %s", domain.ErrNotFound, id)
	}
	s.publishChange(ctx, domain.TableMenuItems, id)
	return nil
}

func (s *CatalogService) publishChange(ctx context.Context, table, id string) {
	if s.publisher != nil {
		_ = s.publisher.PublishChange(ctx, domain.ChangeEvent{
			Type:      "menu_updated",
			Table:     table,
			ID:        id,
			Timestamp: time.Now(),
		})
	}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
