package service

import "github.com/MKhiriev/go-blog/models"

// isSelfOrAdmin reports whether caller may act on a resource owned by ownerID.
func isSelfOrAdmin(caller models.Claims, ownerID string) bool {
	return caller.IsAdmin || (caller.UserID != "" && caller.UserID == ownerID)
}

// requireSelfOrAdmin returns denied unless caller owns the resource or is an
// admin.
func requireSelfOrAdmin(caller models.Claims, ownerID string, denied error) error {
	if !isSelfOrAdmin(caller, ownerID) {
		return denied
	}
	return nil
}

// requireAdmin returns denied unless caller is an admin.
func requireAdmin(caller models.Claims, denied error) error {
	if !caller.IsAdmin {
		return denied
	}
	return nil
}
