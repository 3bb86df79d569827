// Command slotbench measures the storage backends against each other:
// element churn through a linked list, range growth, and allocator
// throughput, over workloads described in YAML.
package main

func main() {
	execute()
}
