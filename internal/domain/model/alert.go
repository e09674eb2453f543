package model

import "time"

// NewOrderAlert is raised when the number of new orders grows between polls.
type NewOrderAlert struct {
	ID       string    `json:"id"`
	Count    int       `json:"count"`
	Previous int       `json:"previous"`
	RaisedAt time.Time `json:"raisedAt"`
}

// WatcherStatus describes the latest state of the new-order poller.
type WatcherStatus struct {
	Running   bool
	NewOrders int
	LastPoll  time.Time
	LastError string
}
