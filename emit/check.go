package emit

import (
	"github.com/decisiontable/dtc/intern"
	"github.com/decisiontable/dtc/tree"
)

// Check walks n and every descendant, failing with ErrUnresolvable the
// first time it finds two Inferences settled together (in the same
// InfsV, InfsO or Leftover bucket) that conclude the same Name with
// different Values.
func Check(n *tree.Node) error {
	if n == nil {
		return nil
	}
	if err := checkBucket(n.InfsV); err != nil {
		return err
	}
	if err := checkBucket(n.InfsO); err != nil {
		return err
	}
	if err := checkBucket(n.Leftover); err != nil {
		return err
	}
	if err := Check(n.NodeV); err != nil {
		return err
	}
	return Check(n.NodeO)
}

func checkBucket(infs *intern.Inferences) error {
	if infs == nil {
		return nil
	}
	for i := 0; i < infs.Len(); i++ {
		a := infs.At(i)
		for j := i + 1; j < infs.Len(); j++ {
			b := infs.At(j)
			if a.Conclusion.Name == b.Conclusion.Name && a.Conclusion != b.Conclusion {
				return ErrUnresolvable.New(
					a.Conclusion.Name.Symbol.String(),
					a.Conclusion.Symbol.String(), a.File, a.Row,
					b.Conclusion.Symbol.String(), b.File, b.Row,
				)
			}
		}
	}
	return nil
}
