package model

// Capabilities checked by the route guards.
const (
	PermAddBook         = "catalog.add_book"
	PermChangeBook      = "catalog.change_book"
	PermAddAuthor       = "catalog.add_author"
	PermChangeAuthor    = "catalog.change_author"
	PermDeleteAuthor    = "catalog.delete_author"
	PermViewAuthor      = "catalog.view_author"
	PermCanMarkReturned = "catalog.can_mark_returned"
)

var Permissions = []string{
	PermAddBook,
	PermChangeBook,
	PermAddAuthor,
	PermChangeAuthor,
	PermDeleteAuthor,
	PermViewAuthor,
	PermCanMarkReturned,
}

func IsKnownPermission(codename string) bool {
	for _, p := range Permissions {
		if p == codename {
			return true
		}
	}
	return false
}
