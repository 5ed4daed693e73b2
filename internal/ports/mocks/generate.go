//go:generate mockgen -source=../activity_repository.go -destination=./mock_activity_repository.go -package=mocks
//go:generate mockgen -source=../activity_cache.go -destination=./mock_activity_cache.go -package=mocks
//go:generate mockgen -source=../validator.go -destination=./mock_validator.go -package=mocks
//go:generate mockgen -source=../event_publisher.go -destination=./mock_event_publisher.go -package=mocks

package mocks
