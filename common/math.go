package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective creates a right-handed perspective projection matrix with the
// OpenGL [-1, 1] clip-space depth range. Combine with DepthRangeCorrection to
// target WebGPU's [0, 1] depth range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = (far + near) / (near - far)
	out[11] = -1.0
	out[14] = (2.0 * far * near) / (near - far)
	out[15] = 0.0
}

// DepthRangeCorrection writes the matrix that remaps OpenGL clip-space depth
// [-1, 1] to the WebGPU/Metal/DX [0, 1] depth range: z' = 0.5*z + 0.5*w.
// Premultiply the projection matrix with this before uploading camera uniforms.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
func DepthRangeCorrection(out []float32) {
	Identity(out)
	out[10] = 0.5
	out[14] = 0.5
}

// LookTo creates a right-handed view matrix from an eye position and a view
// direction. The direction does not need to be normalized.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - dirX, dirY, dirZ: direction the camera faces
//   - upX, upY, upZ: up vector defining camera orientation (typically 0,1,0)
func LookTo(out []float32, eyeX, eyeY, eyeZ, dirX, dirY, dirZ, upX, upY, upZ float32) {
	fx, fy, fz := Normalize3(dirX, dirY, dirZ)

	// side = normalize(cross(forward, up))
	sx := fy*upZ - fz*upY
	sy := fz*upX - fx*upZ
	sz := fx*upY - fy*upX
	sx, sy, sz = Normalize3(sx, sy, sz)

	// up' = cross(side, forward)
	ux := sy*fz - sz*fy
	uy := sz*fx - sx*fz
	uz := sx*fy - sy*fx

	out[0], out[4], out[8], out[12] = sx, sy, sz, -(sx*eyeX + sy*eyeY + sz*eyeZ)
	out[1], out[5], out[9], out[13] = ux, uy, uz, -(ux*eyeX + uy*eyeY + uz*eyeZ)
	out[2], out[6], out[10], out[14] = -fx, -fy, -fz, fx*eyeX+fy*eyeY+fz*eyeZ
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Normalize3 normalizes a 3-component vector. A zero vector is returned unchanged.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - nx, ny, nz: the normalized components
func Normalize3(x, y, z float32) (nx, ny, nz float32) {
	lenSq := x*x + y*y + z*z
	if lenSq == 0 {
		return x, y, z
	}
	invLen := 1.0 / math32.Sqrt(lenSq)
	return x * invLen, y * invLen, z * invLen
}

// QuatFromAxisAngle builds a unit quaternion (x, y, z, w) representing a
// rotation of angle radians about the given axis. The axis is normalized
// internally.
//
// Parameters:
//   - axisX, axisY, axisZ: rotation axis
//   - angle: rotation angle in radians
//
// Returns:
//   - [4]float32: the quaternion as (x, y, z, w)
func QuatFromAxisAngle(axisX, axisY, axisZ, angle float32) [4]float32 {
	ax, ay, az := Normalize3(axisX, axisY, axisZ)
	half := angle / 2.0
	s := math32.Sin(half)
	return [4]float32{ax * s, ay * s, az * s, math32.Cos(half)}
}

// QuatRotateVec3 rotates a 3-component vector by a unit quaternion (x, y, z, w).
// Uses the expanded form v' = v + 2*cross(q.xyz, cross(q.xyz, v) + q.w*v).
//
// Parameters:
//   - q: the unit quaternion as (x, y, z, w)
//   - x, y, z: vector components to rotate
//
// Returns:
//   - rx, ry, rz: the rotated vector components
func QuatRotateVec3(q [4]float32, x, y, z float32) (rx, ry, rz float32) {
	// t = 2 * cross(q.xyz, v)
	tx := 2.0 * (q[1]*z - q[2]*y)
	ty := 2.0 * (q[2]*x - q[0]*z)
	tz := 2.0 * (q[0]*y - q[1]*x)

	// v' = v + q.w*t + cross(q.xyz, t)
	rx = x + q[3]*tx + (q[1]*tz - q[2]*ty)
	ry = y + q[3]*ty + (q[2]*tx - q[0]*tz)
	rz = z + q[3]*tz + (q[0]*ty - q[1]*tx)
	return rx, ry, rz
}

// Mat4FromQuatTranslation builds a 4x4 column-major model matrix equal to
// translation * rotation, where the rotation is given as a unit quaternion
// (x, y, z, w).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - q: the unit quaternion as (x, y, z, w)
//   - tx, ty, tz: translation in world space
func Mat4FromQuatTranslation(out []float32, q [4]float32, tx, ty, tz float32) {
	x, y, z, w := q[0], q[1], q[2], q[3]

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	out[0] = 1 - 2*(yy+zz)
	out[1] = 2 * (xy + wz)
	out[2] = 2 * (xz - wy)
	out[3] = 0

	out[4] = 2 * (xy - wz)
	out[5] = 1 - 2*(xx+zz)
	out[6] = 2 * (yz + wx)
	out[7] = 0

	out[8] = 2 * (xz + wy)
	out[9] = 2 * (yz - wx)
	out[10] = 1 - 2*(xx+yy)
	out[11] = 0

	out[12] = tx
	out[13] = ty
	out[14] = tz
	out[15] = 1
}
