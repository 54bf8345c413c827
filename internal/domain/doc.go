// Package domain holds what every entity package shares: the error
// sentinels the adapters translate into status codes, field-level
// validation errors, and the Action contract of the unit of work. The story
// model itself lives in domain/story.
package domain
