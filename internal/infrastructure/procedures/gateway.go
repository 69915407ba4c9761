package procedures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/metrics"
	"hackathon-catalog.backend/pkg/logger"
)

// Param is one named procedure argument. Values are scalars (string, int64,
// bool) or list fields already serialized with EncodeList.
type Param struct {
	Name  string
	Value any
}

func P(name string, value any) Param {
	return Param{Name: name, Value: value}
}

// Row maps result column names to driver values. []byte columns are
// converted to string.
type Row map[string]any

// Gateway issues named stored procedure calls. A nil error means the call
// completed; an empty result is still a success. Every failure wraps
// errors.ErrPersistenceFailure.
type Gateway interface {
	Call(ctx context.Context, procedure string, params ...Param) ([]Row, error)
}

// GormGateway runs calls through gorm's connection pool, or through the
// connection pinned by a Session when ctx carries one.
type GormGateway struct {
	db      *gorm.DB
	dialect Dialect
}

func NewGateway(db *gorm.DB, dialect Dialect) *GormGateway {
	return &GormGateway{db: db, dialect: dialect}
}

func (g *GormGateway) Call(ctx context.Context, procedure string, params ...Param) ([]Row, error) {
	if !ValidProcedureName(procedure) {
		return nil, fmt.Errorf("%w: invalid procedure name %q", domainerrors.ErrPersistenceFailure, procedure)
	}

	query, args := g.dialect.Render(procedure, params)
	start := time.Now()
	rows, err := g.query(ctx, query, args)
	elapsed := time.Since(start)
	metrics.GatewayCallDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

	if err != nil {
		metrics.GatewayCalls.WithLabelValues(procedure, metrics.OutcomeFailure).Inc()
		logger.Error(ctx, "Stored procedure call failed", callFields(procedure, params, elapsed, err)...)
		return nil, fmt.Errorf("call %s: %w: %w", procedure, domainerrors.ErrPersistenceFailure, err)
	}

	metrics.GatewayCalls.WithLabelValues(procedure, metrics.OutcomeSuccess).Inc()
	logger.Debug(ctx, "Stored procedure call",
		zap.String("procedure", procedure),
		zap.Int("rows", len(rows)),
		zap.Duration("latency", elapsed),
	)
	return rows, nil
}

func (g *GormGateway) query(ctx context.Context, query string, args []any) ([]Row, error) {
	sqlRows, err := GetDB(ctx, g.db).WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer sqlRows.Close()

	cols, err := sqlRows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]Row, 0)
	for sqlRows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := sqlRows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := sqlRows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func callFields(procedure string, params []Param, elapsed time.Duration, err error) []zap.Field {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	fields := []zap.Field{
		zap.String("procedure", procedure),
		zap.Strings("params", names),
		zap.Duration("latency", elapsed),
		zap.Error(err),
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		fields = append(fields, zap.Uint16("mysql_errno", myErr.Number))
	}
	return fields
}
