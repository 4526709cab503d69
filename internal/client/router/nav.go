package router

import "github.com/dmitrijs2005/accountsclient/internal/client/i18n"

// Link is a navigation bar entry; Label is an i18n key.
type Link struct {
	Label string
	Path  string
}

// NavLinks derives the navigation bar from the login state. The logout entry
// is an action and carries no path.
func NavLinks(loggedIn bool, userID int64) []Link {
	if !loggedIn {
		return []Link{
			{Label: i18n.Home, Path: "/"},
			{Label: i18n.SignUp, Path: "/signup"},
			{Label: i18n.Login, Path: "/login"},
		}
	}
	return []Link{
		{Label: i18n.Home, Path: "/"},
		{Label: i18n.MyProfile, Path: UserPath(userID)},
		{Label: i18n.Logout, Path: ""},
	}
}
