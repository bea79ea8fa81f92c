// Command savings-planner matches savers against savings products and
// reports which contribution scenarios reach their goal.
package main

func main() {
	Execute()
}
