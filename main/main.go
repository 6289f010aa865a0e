package main

import (
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/arrowbuf"
)

// Profiling harness: hammers the decode path and writes a heap profile.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	values := make([]int64, 4096)
	valid := make([]bool, len(values))
	for i := range values {
		values[i] = rand.Int63()
		valid[i] = i%7 != 0
	}
	d, err := arrowbuf.Encode(values, valid)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		if _, _, err := arrowbuf.Decode[int64](d); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
