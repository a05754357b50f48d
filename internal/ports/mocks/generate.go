//go:generate mockgen -source=../cache_store.go                 -destination=./mock_cache_store.go                 -package=mocks
//go:generate mockgen -source=../user_repository.go             -destination=./mock_user_repository.go             -package=mocks
//go:generate mockgen -source=../product_repository.go          -destination=./mock_product_repository.go          -package=mocks
//go:generate mockgen -source=../customer_provider.go           -destination=./mock_customer_provider.go           -package=mocks
//go:generate mockgen -source=../customer_validator.go          -destination=./mock_customer_validator.go          -package=mocks
//go:generate mockgen -source=../logger.go                      -destination=./mock_logger.go                      -package=mocks
//go:generate mockgen -source=../message_consumer.go            -destination=./mock_message_consumer.go            -package=mocks
//go:generate mockgen -source=../user_usecase.go                -destination=./mock_user_usecase.go                -package=mocks
//go:generate mockgen -source=../product_usecase.go             -destination=./mock_product_usecase.go             -package=mocks
//go:generate mockgen -source=../customer_validation_usecase.go -destination=./mock_customer_validation_usecase.go -package=mocks

package mocks
