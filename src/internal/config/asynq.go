package config

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

func asynqRedisOpt(v *viper.Viper) asynq.RedisClientOpt {
	host := v.GetString("redis.host")
	if host == "" {
		host = "127.0.0.1"
	}

	port := v.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
	}
}

func NewAsynqClient(v *viper.Viper) *asynq.Client {
	return asynq.NewClient(asynqRedisOpt(v))
}

func NewAsynqServer(v *viper.Viper) *asynq.Server {
	return asynq.NewServer(asynqRedisOpt(v), asynq.Config{
		Concurrency: 1,
	})
}

// NewAsynqScheduler enqueues the stuck-payment sweep on a fixed interval.
func NewAsynqScheduler(v *viper.Viper) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(asynqRedisOpt(v), nil)

	interval := v.GetInt("reconciler.sweep_interval_seconds")
	if interval <= 0 {
		interval = 30
	}
	spec := fmt.Sprintf("@every %s", (time.Duration(interval) * time.Second).String())
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeSweepStuckPayments, nil)); err != nil {
		panic(err)
	}

	return scheduler
}
