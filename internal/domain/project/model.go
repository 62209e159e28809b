package project

import (
	"encoding/json"
	"time"
)

// Project is a shared project record. LinkedChats, Members and GameSettings
// are JSON-shaped fields stored and replaced wholesale; project membership
// is tested by value inside Members, the same way group membership works.
type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Icon         string          `json:"icon"`
	Description  string          `json:"description"`
	CreatorID    string          `json:"creatorId"`
	LinkedChats  json.RawMessage `json:"linkedChats"`
	Members      json.RawMessage `json:"projectMembers"`
	GameSettings json.RawMessage `json:"gameSettings"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Data is the per-project aggregate document: a fixed set of named JSON
// collections, each independently replaceable, exactly one row per project.
type Data struct {
	ProjectID       string          `json:"projectId"`
	GanttTasks      json.RawMessage `json:"ganttTasks"`
	Milestones      json.RawMessage `json:"milestones"`
	TodoItems       json.RawMessage `json:"todoItems"`
	SharedLinks     json.RawMessage `json:"sharedLinks"`
	Memos           json.RawMessage `json:"memos"`
	Events          json.RawMessage `json:"events"`
	CategoryOrder   json.RawMessage `json:"categoryOrder"`
	HolidaySettings json.RawMessage `json:"holidaySettings"`
}

// DefaultData returns the well-defined empty aggregate served when no row
// exists. Reading it creates nothing.
func DefaultData(projectID string) *Data {
	empty := json.RawMessage(`[]`)
	return &Data{
		ProjectID:       projectID,
		GanttTasks:      empty,
		Milestones:      empty,
		TodoItems:       empty,
		SharedLinks:     empty,
		Memos:           empty,
		Events:          empty,
		CategoryOrder:   empty,
		HolidaySettings: json.RawMessage(`{}`),
	}
}

// Patch carries a partial project update. Nil fields are "keep existing";
// non-nil fields (including explicit empty collections) replace.
type Patch struct {
	Name         *string
	Icon         *string
	Description  *string
	LinkedChats  json.RawMessage
	Members      json.RawMessage
	GameSettings json.RawMessage
}

// DataPatch carries a partial aggregate update with the same nil-keeps,
// supplied-replaces semantics per named collection.
type DataPatch struct {
	GanttTasks      json.RawMessage
	Milestones      json.RawMessage
	TodoItems       json.RawMessage
	SharedLinks     json.RawMessage
	Memos           json.RawMessage
	Events          json.RawMessage
	CategoryOrder   json.RawMessage
	HolidaySettings json.RawMessage
}
