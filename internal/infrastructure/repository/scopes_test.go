package repository

import (
	"testing"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestConditions(t *testing.T) {
	var c conditions
	assert.Equal(t, "", c.where())

	r := report.DateRange{From: time.Unix(0, 0), To: time.Unix(60, 0)}
	c.between("h.created_date_time", &r)
	c.between("ignored", nil)
	c.add("h.payment_type = ?", "Cash")

	assert.Equal(t, " WHERE h.created_date_time >= ? AND h.created_date_time < ? AND h.payment_type = ?", c.where())
	assert.Equal(t, []interface{}{r.From, r.To, "Cash"}, c.args)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%INV\\_1\\%%", likePattern(" INV_1% "))
}
