// Package service defines the backend-agnostic set of remote collections
// the commands work with.
package service

import (
	"healthyou/internal/articles"
	"healthyou/internal/records"
	"healthyou/internal/remotelist"
)

// Service gives commands their remote collections and the article search.
// Commands never build HTTP clients directly.
type Service interface {
	// Reminders is the user's reminder collection.
	Reminders() remotelist.Endpoint[records.Reminder]

	// Profiles is the health profile collection.
	Profiles() remotelist.Endpoint[records.Profile]

	// Posts is the social post collection.
	Posts() remotelist.Endpoint[records.Post]

	// Accounts is the registered account collection used for login.
	Accounts() remotelist.Endpoint[records.Account]

	// Articles searches the public article index.
	Articles() articles.Searcher
}
