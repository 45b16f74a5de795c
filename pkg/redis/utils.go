package redis

import (
	"context"
)

// ScanKeys collects every key matching pattern using SCAN rather than KEYS
func ScanKeys(ctx context.Context, client *Client, pattern string, count int64) ([]string, error) {
	var keys []string
	var cursor uint64

	for {
		batch, next, err := client.Scan(ctx, cursor, pattern, count)
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// DeleteKeysByPattern removes every key matching pattern in batches of batchSize
func DeleteKeysByPattern(ctx context.Context, client *Client, pattern string, batchSize int64) error {
	if batchSize <= 0 {
		batchSize = 100
	}

	keys, err := ScanKeys(ctx, client, pattern, batchSize)
	if err != nil {
		return err
	}

	for start := 0; start < len(keys); start += int(batchSize) {
		end := start + int(batchSize)
		if end > len(keys) {
			end = len(keys)
		}
		if err := client.Delete(ctx, keys[start:end]...); err != nil {
			return err
		}
	}

	return nil
}
