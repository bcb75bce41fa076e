// Package ordernumber issues order numbers from a postgres sequence.
//
// A number is the creation date (yyyyMMdd), a two digit shard id and the
// next sequence value left padded to ten digits, e.g. 20260301010000000042.
// The sequence makes numbers unique per database; the shard id keeps them
// unique across databases that share a date.
package ordernumber

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	MaxShardID   = 99
	sequenceMod  = 10_000_000_000
	nextValQuery = "SELECT nextval('order_number_seq')"
)

var _ ports.OrderNumberGenerator = (*SequenceGenerator)(nil)

type SequenceGenerator struct {
	db      *gorm.DB
	shardID int
	now     func() time.Time
}

func NewSequenceGenerator(db *gorm.DB, shardID int) (*SequenceGenerator, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}
	if shardID < 0 || shardID > MaxShardID {
		return nil, errs.NewValueIsOutOfRangeError("shard id", shardID, 0, MaxShardID)
	}
	return &SequenceGenerator{
		db:      db,
		shardID: shardID,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// Next returns a fresh order number.
func (g *SequenceGenerator) Next(ctx context.Context) (string, error) {
	var value int64
	if err := g.db.WithContext(ctx).Raw(nextValQuery).Scan(&value).Error; err != nil {
		return "", pkgerrors.Wrap(err, "next order number")
	}
	return fmt.Sprintf("%s%02d%010d", g.now().Format("20060102"), g.shardID, value%sequenceMod), nil
}
