// Package geom provides the small float64 vector toolkit shared by the
// road-network engines: a Vec3 value type with the usual arithmetic,
// normalisation and unsigned angle helpers.
//
// The ground plane is X/Z and Y points up. All operations are pure and
// allocation-free.
package geom
