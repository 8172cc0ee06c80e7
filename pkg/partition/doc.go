/*
Package partition provides the combinatorial primitive the planner is built on.

A redundancy group with batch size K can be drained by 0..K units at a time.
NPart enumerates those counts for one group. Product combines two iterators
into one whose tuple is the concatenation of both tuples and whose id space is
their Cartesian product. Compose folds any number of iterators left to right,
so the tuple position of each group matches its position in the input.

Ids use a mixed-radix encoding: for groups with batch sizes K1..Kn the id of
tuple (c1..cn) is

	((c1*(K2+1) + c2)*(K3+1) + c3)...

which makes ToTuple and FromTuple a total bijection over
[0, (K1+1)*(K2+1)*...*(Kn+1)).

	it := partition.Compose(partition.NewNPart(2), partition.NewNPart(2))
	for it.Begin(); !it.End(); it.Next() {
		fmt.Println(it.Current(), partition.Tuple(it, it.Current()))
	}

Iterators hold a cursor and are not safe for concurrent use.
*/
package partition
