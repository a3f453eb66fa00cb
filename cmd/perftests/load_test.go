package perftests

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	model "skinswap/internal/models"
	repository "skinswap/internal/repository"
	trading "skinswap/internal/tradingService"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumBidders  int
	NumListings int
	ReadRatio   int // out of 10
	AcceptRatio int // out of 10, applied to successful offers
	Burst       bool
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()

	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupMarket seeds one seller with numListings open listings and numBidders users with one item each
func setupMarket(b *testing.B, numListings, numBidders int) (*trading.TradingService, []string) {
	b.Helper()
	repo := repository.NewMemoryRepo()
	svc := trading.NewTradingService(repo, nil)
	ctx := context.Background()

	repo.AddUser(model.User{UserID: "seller"})
	listingIDs := make([]string, numListings)
	for i := 0; i < numListings; i++ {
		itemID := fmt.Sprintf("listed_%d", i)
		seedItem(repo, itemID, "seller")
		listing, err := svc.CreateListing(ctx, "seller", itemID)
		if err != nil {
			b.Fatalf("failed to create listing: %v", err)
		}
		listingIDs[i] = listing.ListingID
	}

	for i := 0; i < numBidders; i++ {
		userID := fmt.Sprintf("bidder_%d", i)
		repo.AddUser(model.User{UserID: userID})
		seedItem(repo, fmt.Sprintf("bidder_item_%d", i), userID)
	}
	return svc, listingIDs
}

// Benchmark_Load_TradingSystem runs multiple scenarios
func Benchmark_Load_TradingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, 0, false},
		{"High-Contention-WriteHeavy", 500, 5, 0, 0, false},
		{"Mixed-Workload", 300, 50, 7, 2, false},
		{"ReadHeavy", 200, 50, 9, 0, false},
		{"Edge-Case-SingleListing", 100, 1, 5, 0, false},
		{"Peak-Burst", 500, 50, 0, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, listingIDs := setupMarket(b, s.NumListings, s.NumBidders)
	ctx := context.Background()

	var totalOps, offersWon, offersLost, accepted, totalReads int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			listingID := listingIDs[rnd.Intn(len(listingIDs))]
			bidderIndex := rnd.Intn(s.NumBidders)
			bidder := fmt.Sprintf("bidder_%d", bidderIndex)
			itemID := fmt.Sprintf("bidder_item_%d", bidderIndex)

			opStart := time.Now()
			if rnd.Intn(10) < s.ReadRatio {
				_, _ = svc.GetListing(ctx, listingID)
				atomic.AddInt64(&totalReads, 1)
			} else if _, err := svc.MakeOffer(ctx, listingID, bidder, itemID); err != nil {
				atomic.AddInt64(&offersLost, 1)
			} else {
				atomic.AddInt64(&offersWon, 1)
				// Accepting closes the listing for good; declining reopens it for the next round
				if rnd.Intn(10) < s.AcceptRatio {
					if _, err := svc.AcceptOffer(ctx, listingID, "seller"); err == nil {
						atomic.AddInt64(&accepted, 1)
					}
				} else {
					_, _ = svc.DeclineOffer(ctx, listingID, "seller")
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Listings: %d | Total Ops: %d | Offers Won: %d | Offers Lost: %d | Accepted: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumListings, totalOps, offersWon, offersLost, accepted, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
