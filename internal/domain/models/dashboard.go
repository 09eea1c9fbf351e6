package models

// StatCard is one summary figure shown above a list or on the dashboard.
type StatCard struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Up     *bool  `json:"up,omitempty"`
}

// HealthCheck is one row of the system health panel.
type HealthCheck struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`
	Status string `json:"status"`
}

// QuickAction is a dashboard shortcut.
type QuickAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Dashboard is the overview page payload.
type Dashboard struct {
	Stats        []StatCard    `json:"stats"`
	Health       []HealthCheck `json:"health"`
	QuickActions []QuickAction `json:"quickActions"`
}

// Metric is one analytics figure.
type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// TopPage is a row of the analytics top pages table.
type TopPage struct {
	Path     string `json:"path"`
	Sessions int    `json:"sessions"`
	Change   string `json:"change"`
}

// TrafficSource is a share of sessions by referrer kind, in percent.
type TrafficSource struct {
	Source string `json:"source"`
	Value  int    `json:"value"`
}

// Analytics is the analytics page payload.
type Analytics struct {
	Metrics  []Metric        `json:"metrics"`
	TopPages []TopPage       `json:"topPages"`
	Sources  []TrafficSource `json:"trafficSources"`
}

// Email is one inbox message.
type Email struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
	Time    string `json:"time"`
	Read    bool   `json:"read"`
	Starred bool   `json:"starred"`
	Avatar  string `json:"avatar"`
}

// Conversation is one chat thread summary.
type Conversation struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Unread      int    `json:"unread"`
	Online      bool   `json:"online"`
}

// ChatMessage is one message of the open conversation.
type ChatMessage struct {
	ID     int    `json:"id"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	Time   string `json:"time"`
	Mine   bool   `json:"mine"`
}

// Messages is the messages page payload.
type Messages struct {
	Conversations []Conversation `json:"conversations"`
	Thread        []ChatMessage  `json:"thread"`
}

// CalendarEvent is an event on a day of the current month.
type CalendarEvent struct {
	ID    int    `json:"id"`
	Day   int    `json:"day"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Color string `json:"color"`
}

// Calendar is the month view payload.
type Calendar struct {
	Year   int             `json:"year"`
	Month  string          `json:"month"`
	Events []CalendarEvent `json:"events"`
}

// FAQ is one support question.
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// SupportCategory is a help-centre section.
type SupportCategory struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Support is the support page payload.
type Support struct {
	FAQs       []FAQ             `json:"faqs"`
	Categories []SupportCategory `json:"categories"`
}
