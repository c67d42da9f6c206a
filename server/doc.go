// Package server exposes map generation and path search as a JSON API on
// a gorilla/mux router.
//
//	GET    /api/health
//	POST   /api/maps              generate (body: GenerateRequest, optional)
//	GET    /api/maps/current      last generated map
//	DELETE /api/maps/current      clear it
//	POST   /api/maps/regenerate   same config, new seed unless pinned
//	POST   /api/paths             path search (body: PathRequest)
package server
