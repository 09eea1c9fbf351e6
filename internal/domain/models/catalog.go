package models

import "time"

// Item is one inventory row on the items page.
type Item struct {
	ID       int     `json:"id" yaml:"id" db:"id"`
	Name     string  `json:"name" yaml:"name" db:"name"`
	SKU      string  `json:"sku" yaml:"sku" db:"sku"`
	Category string  `json:"category" yaml:"category" db:"category"`
	Price    float64 `json:"price" yaml:"price" db:"price"`
	Stock    int     `json:"stock" yaml:"stock" db:"stock"`
	Status   string  `json:"status" yaml:"status" db:"status"`
}

// Order is one customer order.
type Order struct {
	ID       string  `json:"id" yaml:"id" db:"id"`
	Customer string  `json:"customer" yaml:"customer" db:"customer"`
	Email    string  `json:"email" yaml:"email" db:"email"`
	Date     string  `json:"date" yaml:"date" db:"order_date"`
	Items    int     `json:"items" yaml:"items" db:"items"`
	Total    float64 `json:"total" yaml:"total" db:"total"`
	Status   string  `json:"status" yaml:"status" db:"status"`
}

// Project is one tracked initiative.
type Project struct {
	ID          int    `json:"id" yaml:"id" db:"id"`
	Name        string `json:"name" yaml:"name" db:"name"`
	Description string `json:"description" yaml:"description" db:"description"`
	Status      string `json:"status" yaml:"status" db:"status"`
	Priority    string `json:"priority" yaml:"priority" db:"priority"`
	Progress    int    `json:"progress" yaml:"progress" db:"progress"`
	Team        int    `json:"team" yaml:"team" db:"team_size"`
	DueDate     string `json:"dueDate" yaml:"dueDate" db:"due_date"`
	Tag         string `json:"tag" yaml:"tag" db:"tag"`
}

// TeamMember is one person on the team page.
type TeamMember struct {
	ID     int    `json:"id" yaml:"id" db:"id"`
	Name   string `json:"name" yaml:"name" db:"name"`
	Email  string `json:"email" yaml:"email" db:"email"`
	Dept   string `json:"dept" yaml:"dept" db:"department"`
	Role   string `json:"role" yaml:"role" db:"role"`
	Status string `json:"status" yaml:"status" db:"status"`
	Joined string `json:"joined" yaml:"joined" db:"joined"`
}

// Report is one generated or scheduled report.
type Report struct {
	ID        int    `json:"id" yaml:"id" db:"id"`
	Name      string `json:"name" yaml:"name" db:"name"`
	Type      string `json:"type" yaml:"type" db:"type"`
	Status    string `json:"status" yaml:"status" db:"status"`
	Generated string `json:"generated" yaml:"generated" db:"generated"`
	Size      string `json:"size" yaml:"size" db:"size"`
	Author    string `json:"author" yaml:"author" db:"author"`
}

// Task is one to-do entry.
type Task struct {
	ID       int    `json:"id" yaml:"id" db:"id"`
	Title    string `json:"title" yaml:"title" db:"title"`
	Priority string `json:"priority" yaml:"priority" db:"priority"`
	Due      string `json:"due" yaml:"due" db:"due"`
	Done     bool   `json:"done" yaml:"done" db:"done"`
	Assignee string `json:"assignee" yaml:"assignee" db:"assignee"`
}

// State is the derived completion label used by the task filters.
func (t Task) State() string {
	if t.Done {
		return "Completed"
	}
	return "Pending"
}

// Activity is one timeline event.
type Activity struct {
	ID        string    `json:"id" yaml:"id" db:"id"`
	Type      string    `json:"type" yaml:"type" db:"type"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp" db:"occurred_at"`
	Message   string    `json:"message" yaml:"message" db:"message"`
	User      string    `json:"user" yaml:"user" db:"actor"`
}
