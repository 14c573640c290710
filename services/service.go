package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resell-dashboard/pkg/monitoring"
	"resell-dashboard/utils"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateSKU  = errors.New("sku already exists")
	ErrInvalidColumn = errors.New("invalid column")
)

// Fields is a partial update keyed by column name.
type Fields map[string]interface{}

// Service bundles the per-collection services over one store handle.
type Service struct {
	Settings  *SettingService
	Inventory *InventoryService
	Sales     *SaleService
	Shipments *ShipmentService
	Returns   *ReturnService
	Tasks     *TaskService
	Dashboard *DashboardService
}

// New wires every collection service to db.
func New(db *gorm.DB, log *zap.Logger) *Service {
	log = log.Named("services")
	s := &Service{
		Settings:  &SettingService{store: newStore(db, log, "settings", settingColumns)},
		Inventory: &InventoryService{store: newStore(db, log, "inventory", inventoryColumns)},
		Shipments: &ShipmentService{store: newStore(db, log, "shipments", shipmentColumns)},
		Returns:   &ReturnService{store: newStore(db, log, "returns", returnColumns)},
		Tasks:     &TaskService{store: newStore(db, log, "tasks", taskColumns)},
	}
	s.Sales = &SaleService{store: newStore(db, log, "sales", saleColumns), inventory: s.Inventory}
	s.Dashboard = &DashboardService{
		inventory: s.Inventory,
		sales:     s.Sales,
		shipments: s.Shipments,
		returns:   s.Returns,
		tasks:     s.Tasks,
	}
	return s
}

// store is the shared data access for one table.
type store struct {
	db      *gorm.DB
	log     *zap.Logger
	table   string
	columns columnSet
}

func newStore(db *gorm.DB, log *zap.Logger, table string, columns columnSet) store {
	return store{db: db, log: log, table: table, columns: columns}
}

// with returns a copy of the store bound to tx.
func (s store) with(tx *gorm.DB) store {
	s.db = tx
	return s
}

func (s store) observe(op string, start time.Time) {
	monitoring.RecordDBQuery(op, s.table, time.Since(start))
}

// fail logs and counts a store failure and wraps err with its context.
func (s store) fail(op string, err error) error {
	s.log.Error("store operation failed",
		zap.String("operation", op),
		zap.String("table", s.table),
		zap.Error(err),
	)
	monitoring.RecordStoreFailure(op, s.table)
	return fmt.Errorf("%s %s: %w", op, s.table, err)
}

func getByID[T any](ctx context.Context, s store, id string) (*T, error) {
	defer s.observe("get", time.Now())

	var row T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.fail("get", err)
	}
	return &row, nil
}

func list[T any](ctx context.Context, s store, opts ListOptions, extra ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	defer s.observe("list", time.Now())

	scope, err := opts.scope(s.columns)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0)
	if err := s.db.WithContext(ctx).Scopes(append(extra, scope)...).Find(&rows).Error; err != nil {
		return nil, s.fail("list", err)
	}
	return rows, nil
}

func (s store) create(ctx context.Context, row interface{}) error {
	defer s.observe("create", time.Now())

	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return s.fail("create", err)
	}
	return nil
}

// update merges fields into the row with the given id and refreshes updated_at.
func (s store) update(ctx context.Context, model interface{}, id string, fields Fields) error {
	defer s.observe("update", time.Now())

	values := make(map[string]interface{}, len(fields)+1)
	for column, v := range fields {
		if err := s.columns.check(column); err != nil {
			return err
		}
		values[column] = v
	}
	values["updated_at"] = utils.Now()

	res := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return s.fail("update", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s store) delete(ctx context.Context, model interface{}, id string) error {
	defer s.observe("delete", time.Now())

	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return s.fail("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s store) count(ctx context.Context, model interface{}, filters ...Filter) (int64, error) {
	defer s.observe("count", time.Now())

	where, err := whereScope(s.columns, filters)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := s.db.WithContext(ctx).Model(model).Scopes(where).Count(&total).Error; err != nil {
		return 0, s.fail("count", err)
	}
	return total, nil
}

type groupCount struct {
	GroupKey *string `gorm:"column:group_key"`
	Total    int64   `gorm:"column:total"`
}

// countBy returns row counts grouped by column. NULL groups are keyed "".
func (s store) countBy(ctx context.Context, model interface{}, column string, filters ...Filter) (map[string]int64, error) {
	defer s.observe("count_by", time.Now())

	if err := s.columns.check(column); err != nil {
		return nil, err
	}
	where, err := whereScope(s.columns, filters)
	if err != nil {
		return nil, err
	}

	var rows []groupCount
	err = s.db.WithContext(ctx).Model(model).
		Scopes(where).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, s.fail("count_by", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		key := ""
		if r.GroupKey != nil {
			key = *r.GroupKey
		}
		counts[key] += r.Total
	}
	return counts, nil
}
