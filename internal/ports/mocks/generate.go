//go:generate mockgen -source=../remote_store.go  -destination=./mock_remote_store.go  -package=mocks
//go:generate mockgen -source=../user_provider.go -destination=./mock_user_provider.go -package=mocks
//go:generate mockgen -source=../caches.go        -destination=./mock_caches.go        -package=mocks
//go:generate mockgen -source=../services.go      -destination=./mock_services.go      -package=mocks

package mocks
