package math

/**
 * @brief Creates and returns a 3x3 identity matrix.
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. Follows the
 * same composition rule as Mat4.Mul: mt is applied first, then other.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := float32(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out_matrix.Data[row*3+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Transforms the direction vector v by mt. Directions carry no
 * translation, which is why this takes a vec3 rather than a point.
 */
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	out := Vec3{}
	out.X = v.X*mt.Data[0] + v.Y*mt.Data[3] + v.Z*mt.Data[6]
	out.Y = v.X*mt.Data[1] + v.Y*mt.Data[4] + v.Z*mt.Data[7]
	out.Z = v.X*mt.Data[2] + v.Y*mt.Data[5] + v.Z*mt.Data[8]
	return out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns).
 */
func (mt Mat3) Transposed() Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*3+col] = mt.Data[col*3+row]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the determinant of the provided matrix. A determinant
 * at or near zero means the matrix is singular and has no inverse.
 */
func (mt Mat3) Determinant() float32 {
	m := mt.Data
	return m[0]*(m[4]*m[8]-m[5]*m[7]) +
		m[1]*(m[5]*m[6]-m[3]*m[8]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

/**
 * @brief Creates and returns an inverse of the provided matrix via the
 * adjugate. The caller is expected to have checked Determinant() first;
 * inverting a singular matrix produces Inf/NaN elements.
 */
func (mt Mat3) Inverse() Mat3 {
	m := mt.Data
	d := 1.0 / mt.Determinant()

	out_matrix := Mat3{}
	o := &out_matrix.Data

	o[0] = d * (m[4]*m[8] - m[7]*m[5])
	o[1] = d * -(m[1]*m[8] - m[7]*m[2])
	o[2] = d * (m[1]*m[5] - m[4]*m[2])
	o[3] = d * -(m[3]*m[8] - m[6]*m[5])
	o[4] = d * (m[0]*m[8] - m[6]*m[2])
	o[5] = d * -(m[0]*m[5] - m[3]*m[2])
	o[6] = d * (m[3]*m[7] - m[6]*m[4])
	o[7] = d * -(m[0]*m[7] - m[6]*m[1])
	o[8] = d * (m[0]*m[4] - m[3]*m[1])

	return out_matrix
}

/**
 * @brief Compares all elements of both matrices and ensures the difference
 * is less than tolerance.
 */
func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := 0; i < 9; i++ {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
