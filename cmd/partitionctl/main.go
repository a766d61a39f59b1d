// Command partitionctl is a small demonstration CLI for the partition
// library: it reads an element list and a bounds mode from a config file,
// enumerates the matching partitions, and prints each one in the
// canonical string format. It is a thin wiring harness; the library
// itself (pkg/partition, pkg/rgs, pkg/enumpartition) has no dependency on
// it.
package main

func main() {
	Execute()
}
