package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RawSource --dir ../usecase --output usecase --outpkg usecasemock --filename raw_source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PayloadDecoder --dir ../usecase --output usecase --outpkg usecasemock --filename payload_decoder_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BoardFetcher --dir ../usecase --output usecase --outpkg usecasemock --filename board_fetcher_mock.go
