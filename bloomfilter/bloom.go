package bloomfilter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
)

// DefaultSeed 데이터셋 검사에 쓰는 고정 시드 (같은 입력이면 같은 추정값)
const DefaultSeed uint64 = 0x9e3779b97f4a7c15

// ====================================================================================
// 기본 블룸 필터
// ====================================================================================

type BloomFilter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	hashSeed [8]byte
}

// New 기대 아이템 수와 목표 오탐률로 크기/해시 개수 결정
func New(expectedItems uint64, falsePositiveRate float64) *BloomFilter {
	return NewWithSeed(expectedItems, falsePositiveRate, DefaultSeed)
}

func NewWithSeed(expectedItems uint64, falsePositiveRate float64, seed uint64) *BloomFilter {
	expectedItems = max(expectedItems, 1)
	size := uint64(-float64(expectedItems) * math.Log(falsePositiveRate) / (math.Log(2) * math.Log(2)))
	size = max(size, 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Log(2)), 1), 15)

	bf := &BloomFilter{
		bitArray: make([]uint64, (size+63)/64),
		size:     size,
		numHash:  numHash,
	}
	binary.LittleEndian.PutUint64(bf.hashSeed[:], seed)
	return bf
}

func (bf *BloomFilter) hash(data []byte, i uint) uint64 {
	h1 := fnv.New64a()
	h1.Write(data)
	h1.Write(bf.hashSeed[:])
	hash1 := h1.Sum64()

	hash2 := hash1>>17 ^ hash1<<47 ^ uint64(i)*0x9e3779b97f4a7c15
	if hash2%2 == 0 {
		hash2++
	}

	return (hash1 + uint64(i)*hash2) % bf.size
}

func (bf *BloomFilter) Add(data []byte) {
	for i := uint(0); i < bf.numHash; i++ {
		pos := bf.hash(data, i)
		bf.bitArray[pos/64] |= 1 << (pos % 64)
	}
	bf.numItems++
}

func (bf *BloomFilter) Contains(data []byte) bool {
	for i := uint(0); i < bf.numHash; i++ {
		pos := bf.hash(data, i)
		if bf.bitArray[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

func intKey(v int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return buf[:]
}

// AddInt 정수 키 추가
func (bf *BloomFilter) AddInt(v int) {
	bf.Add(intKey(v))
}

// ContainsInt 정수 키 포함 여부 (오탐 가능)
func (bf *BloomFilter) ContainsInt(v int) bool {
	return bf.Contains(intKey(v))
}

// Len 추가된 아이템 수
func (bf *BloomFilter) Len() uint64 {
	return bf.numItems
}

// Stats 세팅된 비트 수, 채움 비율, 현재 채움 기준 예상 오탐률
func (bf *BloomFilter) Stats() (uint64, float64, float64) {
	setBits := uint64(0)
	for _, word := range bf.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}

	fillRatio := float64(setBits) / float64(bf.size)
	actualFPR := math.Pow(fillRatio, float64(bf.numHash))

	return setBits, fillRatio, actualFPR
}
