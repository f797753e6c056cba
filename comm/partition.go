package comm

// PartitionMap splits a global index range (elements, or degrees of
// freedom) across the ranks of a group with a maximum imbalance of one
// entry. It is how callers carve their global arrays into the per-rank
// local arrays fed to the collectives.
type PartitionMap struct {
	MaxIndex       int // MaxIndex is partitioned into ParallelDegree pieces
	ParallelDegree int
	Partitions     [][2]int // begin and end index of each partition
}

func NewPartitionMap(parallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Partitions:     make([][2]int, parallelDegree),
	}
	for n := 0; n < parallelDegree; n++ {
		pm.Partitions[n] = pm.split1D(n)
	}
	return
}

// GetBucketRange returns the half-open [kMin, kMax) global range owned by a
// rank.
func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

// GetBucketDimension returns the local count owned by a rank.
func (pm *PartitionMap) GetBucketDimension(bucketNum int) (kMax int) {
	k1, k2 := pm.GetBucketRange(bucketNum)
	kMax = k2 - k1
	return
}

func (pm *PartitionMap) split1D(rankNum int) (bucket [2]int) {
	// Spread the remainder over the first chunks evenly
	var (
		nPart            = pm.MaxIndex / pm.ParallelDegree
		remainder        = pm.MaxIndex % pm.ParallelDegree
		startAdd, endAdd int
	)
	if remainder != 0 {
		if rankNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = rankNum
			endAdd = 1
		}
	}
	bucket[0] = rankNum*nPart + startAdd
	bucket[1] = bucket[0] + nPart + endAdd
	return
}
