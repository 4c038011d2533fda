package service_test

import (
	"testing"

	"github.com/limbo/unbroken/internal/service"
	"github.com/limbo/unbroken/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestMergeRecords(t *testing.T) {
	testCases := []struct {
		Desc   string
		Local  []entity.Record
		Remote []entity.Record
		Result []entity.Record
	}{
		{
			Desc:   "newer remote record wins",
			Local:  []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 100}},
			Remote: []entity.Record{{ID: "R", Date: "2024-01-01", CreatedAt: 200}},
			Result: []entity.Record{{ID: "R", Date: "2024-01-01", CreatedAt: 200}},
		},
		{
			Desc:   "newer local record wins",
			Local:  []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 300}},
			Remote: []entity.Record{{ID: "R", Date: "2024-01-01", CreatedAt: 200}},
			Result: []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 300}},
		},
		{
			Desc:   "tie keeps local",
			Local:  []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 100}},
			Remote: []entity.Record{{ID: "R", Date: "2024-01-01", CreatedAt: 100}},
			Result: []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 100}},
		},
		{
			Desc: "union ordered newest date first",
			Local: []entity.Record{
				{ID: "a", Date: "2024-01-01", CreatedAt: 1},
				{ID: "c", Date: "2024-01-03", CreatedAt: 3},
			},
			Remote: []entity.Record{
				{ID: "b", Date: "2024-01-02", CreatedAt: 2},
				{ID: "d", Date: "2023-12-31", CreatedAt: 4},
			},
			Result: []entity.Record{
				{ID: "c", Date: "2024-01-03", CreatedAt: 3},
				{ID: "b", Date: "2024-01-02", CreatedAt: 2},
				{ID: "a", Date: "2024-01-01", CreatedAt: 1},
				{ID: "d", Date: "2023-12-31", CreatedAt: 4},
			},
		},
		{
			Desc:   "both empty",
			Result: []entity.Record{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, service.MergeRecords(tc.Local, tc.Remote))
		})
	}
}

func TestMergeSnapshotsIsDeterministic(t *testing.T) {
	local := entity.Snapshot{
		CheckIns: []entity.Record{{ID: "L", Date: "2024-01-01", CreatedAt: 100}},
		Holidays: []entity.Record{{ID: "h1", Date: "2024-01-07", CreatedAt: 10}},
	}
	remote := entity.Snapshot{
		CheckIns: []entity.Record{{ID: "R", Date: "2024-01-01", CreatedAt: 200}},
		Holidays: []entity.Record{{ID: "h2", Date: "2024-01-14", CreatedAt: 20}},
	}
	first := service.MergeSnapshots(local, remote)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, service.MergeSnapshots(local, remote))
	}
	assert.Equal(t, "R", first.CheckIns[0].ID)
	assert.Equal(t, []string{"2024-01-14", "2024-01-07"}, dates(first.Holidays))
	assert.Equal(t, "L", local.CheckIns[0].ID)
}
