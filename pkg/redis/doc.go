// Package redis connects to the Redis server that can back the dataset
// catalog (see dataset.NewRedisSource).
//
// Connect parses a redis:// URL, pings the server and retries on failure
// according to Config. Config fields carry env tags so they can be filled by
// the config package:
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
package redis
