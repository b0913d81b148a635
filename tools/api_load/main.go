// Command api_load stress-tests the analytics HTTP API with concurrent
// request workers and reports throughput and latency.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

func main() {
	var (
		targetURL    string
		workers      int
		testDuration time.Duration
		rampUp       time.Duration
		reqTimeout   time.Duration
	)

	flag.StringVar(&targetURL, "url", "http://localhost:8085/api/overview?symbol=BTC", "endpoint URL to hammer")
	flag.IntVar(&workers, "workers", 50, "number of concurrent request workers")
	flag.DurationVar(&testDuration, "dur", 30*time.Second, "test duration (0 for until interrupted)")
	flag.DurationVar(&rampUp, "ramp", 0, "ramp-up duration (spread worker starts across this window)")
	flag.DurationVar(&reqTimeout, "timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	if workers <= 0 {
		log.Fatalf("invalid workers: %d", workers)
	}

	log.Printf("starting API load: url=%s workers=%d duration=%s ramp=%s", targetURL, workers, testDuration, rampUp)

	transport := &http.Transport{
		MaxConnsPerHost:     workers + 10,
		MaxIdleConns:        workers + 10,
		MaxIdleConnsPerHost: workers + 10,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   reqTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("caught signal: %s, shutting down...", sig)
		case <-ctx.Done():
			return
		}

		cancel()
	}()

	if testDuration > 0 {
		go func() {
			timer := time.NewTimer(testDuration)
			defer timer.Stop()
			select {
			case <-timer.C:
				log.Printf("duration reached, stopping...")
				cancel()
			case <-ctx.Done():
				return
			}
		}()
	}

	var (
		requests    int64
		failures    int64
		statusErrs  int64
		latencySumN int64
	)

	var wg sync.WaitGroup

	start := time.Now()

	var interval time.Duration
	if rampUp > 0 {
		interval = rampUp / time.Duration(workers)
	}

	for i := 0; i < workers; i++ {
		if ctx.Err() != nil {
			break
		}
		if i > 0 && interval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(interval):
			}
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
				if err != nil {
					atomic.AddInt64(&failures, 1)
					return
				}

				reqStart := time.Now()
				resp, err := client.Do(req)
				if err != nil {
					if ctx.Err() != nil {
						return
					}
					atomic.AddInt64(&failures, 1)
					continue
				}

				_, _ = io.Copy(io.Discard, resp.Body)
				_ = resp.Body.Close()

				atomic.AddInt64(&requests, 1)
				atomic.AddInt64(&latencySumN, int64(time.Since(reqStart)))
				if resp.StatusCode != http.StatusOK {
					atomic.AddInt64(&statusErrs, 1)
				}
			}
		}()
	}

	ticker := time.NewTicker(5 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				log.Printf("status: requests=%d failures=%d status_errs=%d elapsed=%s",
					atomic.LoadInt64(&requests),
					atomic.LoadInt64(&failures),
					atomic.LoadInt64(&statusErrs),
					time.Since(start).Truncate(time.Second),
				)
			}
		}
	}()

	wg.Wait()
	cancel()

	elapsed := time.Since(start)
	if elapsed == 0 {
		elapsed = time.Millisecond
	}

	total := atomic.LoadInt64(&requests)
	perSec := float64(total) / elapsed.Seconds()
	avgLatency := time.Duration(0)
	if total > 0 {
		avgLatency = time.Duration(atomic.LoadInt64(&latencySumN) / total)
	}

	fmt.Printf("done: requests=%d failures=%d status_errs=%d elapsed=%s req/s=%.2f avg_latency=%s\n",
		total,
		atomic.LoadInt64(&failures),
		atomic.LoadInt64(&statusErrs),
		elapsed.Truncate(time.Millisecond),
		perSec,
		avgLatency.Truncate(time.Microsecond),
	)
}
