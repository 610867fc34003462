package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_queue.go ./queue Queue
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_publisher.go ./metricstore Publisher
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_fetcher.go ./metricstore Fetcher
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_policy_store.go ./policystore Store
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_target_history_db.go ./db TargetHistoryDB
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_locker.go ./sync Locker
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_task_counter.go ./backlog TaskCounter
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_operator.go ./operator Operator
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o ./fakes/fake_limiter.go ./ratelimiter Limiter
