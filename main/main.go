package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/inplace/boundvec"
	"github.com/rawbytedev/inplace/guard"
	"github.com/rawbytedev/inplace/union"
)

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

	var buf [512]int
	v := boundvec.Wrap(buf[:])
	u := union.U3Of2[int, string, float64](2.5)
	sum := 0.0
	for i := 0; i < 10000; i++ {
		g := guard.New(v.Clear)
		for j := 0; j < v.Cap(); j++ {
			v.Push(j)
		}
		for !v.Empty() {
			sum += float64(v.Pop())
		}
		sum += union.Match3(u,
			func(n int) float64 { return float64(n) },
			func(s string) float64 { return float64(len(s)) },
			func(x float64) float64 { return x },
		)
		g.Drop()
	}
	log.Printf("checksum %g", sum)
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
