package service

import (
	"slices"
	"strings"

	"github.com/limbo/unbroken/pkg/entity"
)

// MergeRecords unions two sequences keyed by date. On a date present in both
// the record with the greater CreatedAt wins; on a tie the local one stays.
// The result is ordered by date, newest first.
func MergeRecords(local, remote []entity.Record) []entity.Record {
	byDate := make(map[string]entity.Record, len(local)+len(remote))
	for _, seq := range [][]entity.Record{local, remote} {
		for _, rec := range seq {
			existing, ok := byDate[rec.Date]
			if !ok || rec.CreatedAt > existing.CreatedAt {
				byDate[rec.Date] = rec
			}
		}
	}
	merged := make([]entity.Record, 0, len(byDate))
	for _, rec := range byDate {
		merged = append(merged, rec)
	}
	slices.SortFunc(merged, func(a, b entity.Record) int {
		return strings.Compare(b.Date, a.Date)
	})
	return merged
}

func MergeSnapshots(local, remote entity.Snapshot) entity.Snapshot {
	return entity.Snapshot{
		CheckIns: MergeRecords(local.CheckIns, remote.CheckIns),
		Holidays: MergeRecords(local.Holidays, remote.Holidays),
	}
}
