// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BusRoute is a scheduled service read from the "bus_routes" table.
// Routes are populated out of band; the API only reads them.
type BusRoute struct {
	ID          int64  `db:"id" json:"id"`
	RouteNumber string `db:"route_number" json:"route_number"`
	Source      string `db:"source" json:"source"`
	Destination string `db:"destination" json:"destination"`
	BusType     string `db:"bus_type" json:"bus_type"`

	// Time is the departure time of day rendered as zero-padded "HH:MM".
	Time string `db:"time" json:"time"`
}

// TableName returns the name of the database table
// associated with the BusRoute model.
func (b BusRoute) TableName() string {
	return "bus_routes"
}

// BusSearchResult is the projection returned by a route search.
type BusSearchResult struct {
	RouteNumber   string `db:"route_number" json:"route_number"`
	Source        string `db:"source" json:"source"`
	Destination   string `db:"destination" json:"destination"`
	BusType       string `db:"bus_type" json:"bus_type"`
	FormattedTime string `db:"formatted_time" json:"formatted_time"`
}
