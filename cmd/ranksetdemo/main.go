// Command ranksetdemo replays the classic pb_ds order-statistics
// scenario against the rankset container and dumps a populated tree.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/go-rankset/rankset/rankset"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	failed := 0
	expect := func(name string, got, want int64) {
		if got != want {
			failed++
			logger.Error("expectation failed", zap.String("query", name), zap.Int64("got", got), zap.Int64("want", want))
			return
		}
		logger.Info("ok", zap.String("query", name), zap.Int64("got", got))
	}

	set := rankset.New[int]()
	for _, k := range []int{12, 505, 30, 1000, 10000, 100} {
		_, inserted := set.Insert(k)
		logger.Info("insert", zap.Int("key", k), zap.Bool("inserted", inserted), zap.Int64("len", set.Len()))
	}

	// The order of the keys should be: 12, 30, 100, 505, 1000, 10000.
	for i, want := range []int{12, 30, 100, 505, 1000, 10000} {
		expect(fmt.Sprintf("find_by_order(%d)", i), int64(set.FindByOrder(int64(i)).Key()), int64(want))
	}
	if it := set.FindByOrder(6); it != set.End() {
		failed++
		logger.Error("expectation failed", zap.String("query", "find_by_order(6)"), zap.String("want", "end"))
	}

	expect("order_of_key(10)", set.OrderOfKey(10), 0)
	expect("order_of_key(12)", set.OrderOfKey(12), 0)
	expect("order_of_key(15)", set.OrderOfKey(15), 1)
	expect("order_of_key(30)", set.OrderOfKey(30), 1)
	expect("order_of_key(100)", set.OrderOfKey(100), 2)
	expect("order_of_key(9999999)", set.OrderOfKey(9999999), 6)

	next := set.Erase(30)
	logger.Info("erase", zap.Int("key", 30), zap.Int("successor", next.Key()), zap.Int64("len", set.Len()))

	// The order of the keys should be: 12, 100, 505, 1000, 10000.
	for i, want := range []int{12, 100, 505, 1000, 10000} {
		expect(fmt.Sprintf("find_by_order(%d)", i), int64(set.FindByOrder(int64(i)).Key()), int64(want))
	}
	expect("order_of_key(707)", set.OrderOfKey(707), 3)

	demo := rankset.New[int]()
	for _, k := range []int{5, 13, 1, 123, -1, 9, 12, 7, 14} {
		demo.Insert(k)
	}
	fmt.Println(demo)

	if failed > 0 {
		logger.Error("scenario finished with failures", zap.Int("failed", failed))
		return 1
	}
	logger.Info("scenario finished", zap.Int64("len", set.Len()))
	return 0
}
