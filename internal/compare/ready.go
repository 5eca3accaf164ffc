package compare

import "github.com/sumo-tools/sumoeval/internal/models"

// Ready reports whether every method has a locatable result document for
// the seed. Existence only; nothing is parsed.
func (c *Comparator) Ready(seed int) bool {
	for _, m := range models.AllMethods {
		if _, ok := c.Store.Locate(m, seed); !ok {
			return false
		}
	}
	return true
}

// Partition splits a requested seed list into ready and not-ready seeds,
// duplicates removed, order preserved. Interactive callers compare only
// the ready part; batch callers may still compare everything, since
// missing data degrades to empty fields.
func (c *Comparator) Partition(seeds []int) (ready, notReady []int) {
	for _, s := range Dedupe(seeds) {
		if c.Ready(s) {
			ready = append(ready, s)
		} else {
			notReady = append(notReady, s)
		}
	}
	return ready, notReady
}
