package main

import (
	"fmt"

	"github.com/mgnsk/ringqueue"
)

func main() {
	q := ringqueue.New()

	for _, s := range []string{"banana", "apple", "apple", "cherry"} {
		q.InsertTail(s)
	}

	q.Sort()

	// Duplicates are collapsed entirely, leaving values that occur
	// exactly once.
	q.DeleteDup()

	for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
		fmt.Println(e.Value)
		ringqueue.Release(e)
	}

	q.Free()
}
