package handlers

import "maggamhub/services/admin"

// HandlerBundle groups the assembled handlers for route registration.
type HandlerBundle struct {
	Auth admin.AuthService

	AdminHandler   *AdminHandler
	BookingHandler *BookingHandler
	GalleryHandler *GalleryHandler
}
