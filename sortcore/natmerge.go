package sortcore

// Node 단일 연결 리스트 노드. 한 시점에 정확히 하나의 리스트에만 속한다.
type Node struct {
	Val  int
	Next *Node
}

// FromSlice 배열로부터 연결 리스트 생성 (카운트 하지 않음)
func FromSlice(arr []int) *Node {
	var head, tail *Node
	for _, v := range arr {
		n := &Node{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// ToSlice 연결 리스트를 배열로 변환 (카운트 하지 않음)
func ToSlice(head *Node) []int {
	out := make([]int, 0, Len(head))
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}
	return out
}

// Len 리스트 길이
func Len(head *Node) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}
	return count
}

// run 끝이 분리된(tail.Next == nil) 자연 상승 구간
type run struct {
	head, tail *Node
}

// NaturalMergeSort 자연 병합 정렬 (연결 리스트, 반복).
// 매 패스마다 런을 처음부터 다시 찾고 인접한 두 런씩 병합한다.
// 노드는 복사하지 않고 Next 만 다시 잇는다. 입력 head 는 더 이상 유효하지 않다.
func NaturalMergeSort(head *Node, c *Counters) *Node {
	if head == nil || head.Next == nil {
		return head
	}

	for {
		runs := splitRuns(head, c)
		if len(runs) == 1 {
			return runs[0].head
		}

		var mergedHead, mergedTail *Node
		for i := 0; i < len(runs); i += 2 {
			piece := runs[i]
			// 짝이 없는 마지막 런은 그대로 넘긴다
			if i+1 < len(runs) {
				piece = mergeTwo(runs[i], runs[i+1], c)
			}
			if mergedHead == nil {
				mergedHead = piece.head
			} else {
				mergedTail.Next = piece.head
			}
			mergedTail = piece.tail
		}
		head = mergedHead
	}
}

// splitRuns 리스트를 최대 상승 구간으로 나누고 각 구간을 분리.
// 인접한 쌍을 검사할 때마다 비교 1회.
func splitRuns(head *Node, c *Counters) []run {
	var runs []run
	cur := head
	for cur != nil {
		runHead := cur
		for cur.Next != nil {
			c.Comparisons++
			if cur.Val > cur.Next.Val {
				break
			}
			cur = cur.Next
		}
		next := cur.Next
		cur.Next = nil
		runs = append(runs, run{head: runHead, tail: cur})
		cur = next
	}
	return runs
}

// mergeTwo 정렬된 두 런을 병합.
// 비교는 두 쪽이 모두 남아 있을 때 쌍마다 1회, 교환은 출력에 붙는 노드마다 1회.
func mergeTwo(a, b run, c *Counters) run {
	var dummy Node
	tail := &dummy
	x, y := a.head, b.head

	for x != nil && y != nil {
		c.Comparisons++
		if x.Val <= y.Val {
			tail.Next = x
			x = x.Next
		} else {
			tail.Next = y
			y = y.Next
		}
		tail = tail.Next
		c.Exchanges++
	}

	rest := x
	if rest == nil {
		rest = y
	}
	for ; rest != nil; rest = rest.Next {
		tail.Next = rest
		tail = rest
		c.Exchanges++
	}
	return run{head: dummy.Next, tail: tail}
}
