// Package seed holds the demo dataset as a versioned fixture file and the
// loader that turns it into typed documents for bulk insertion.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"campusapi/backend/internal/shared"
)

//go:embed fixture.json
var fixtureJSON []byte

// Fixture is the fixed demo dataset. Cross-references between collections
// (student ids, teacher ids, subject codes) are consistent by construction.
type Fixture struct {
	Users      []shared.User          `json:"users"`
	Students   []shared.Student       `json:"students"`
	Grades     []shared.Grade         `json:"grades"`
	Attendance []shared.Attendance    `json:"attendance"`
	Materials  []shared.StudyMaterial `json:"materials"`
	Library    []shared.LibraryBook   `json:"library"`
	Events     []shared.Event         `json:"events"`
	Complaints []shared.Complaint     `json:"complaints"`
	Schedules  []shared.Schedule      `json:"schedules"`
	Notices    []shared.Notice        `json:"notices"`
}

// Load parses the embedded fixture.
func Load() (*Fixture, error) {
	var f Fixture
	if err := json.Unmarshal(fixtureJSON, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

// CollectionDocs pairs a collection name with its seed documents.
type CollectionDocs struct {
	Collection string
	Docs       []interface{}
}

// Ordered returns every collection's documents in a fixed insert order.
func (f *Fixture) Ordered() []CollectionDocs {
	return []CollectionDocs{
		{shared.CollectionUsers, toDocs(f.Users)},
		{shared.CollectionStudents, toDocs(f.Students)},
		{shared.CollectionGrades, toDocs(f.Grades)},
		{shared.CollectionAttendance, toDocs(f.Attendance)},
		{shared.CollectionMaterials, toDocs(f.Materials)},
		{shared.CollectionLibrary, toDocs(f.Library)},
		{shared.CollectionEvents, toDocs(f.Events)},
		{shared.CollectionComplaints, toDocs(f.Complaints)},
		{shared.CollectionSchedules, toDocs(f.Schedules)},
		{shared.CollectionNotices, toDocs(f.Notices)},
	}
}

func toDocs[T any](items []T) []interface{} {
	docs := make([]interface{}, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	return docs
}
