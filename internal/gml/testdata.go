package gml

// TestdataSphere is a small GML program unioning two translated spheres
// under a single point light, used by the lexer/parser/evaluator tests.
const TestdataSphere = `
{ /v /u /face 0.8 0.2 v point 1.0 0.2 1.0 } sphere
/s
s -1.2 0.0 3.0 translate
s 1.2 1.0 3.0 translate
union
/scene
-10.0 10.0 0.0 point
1.0 1.0 1.0 point
pointlight
/l
0.5 0.5 0.5 point
[ l ]
scene
4
90.0
1920
1200
"sphere.ppm"
render
{} [] /ident true false 123 1.23 "hello"
`

// TestdataCube is a small GML program unioning a transformed cube and a
// plane under a single point light, exercising cube/plane/uscale/rotatex/
// rotatey builtins.
const TestdataCube = `
{ /v /u /face 1.0 0.5 0.5 point 1.0 0.0 1.0 } cube
0.0 -0.5 4.0 translate
2.0 uscale
45.0 rotatex
135.0 rotatey
/c
{ /v /u /face 0.5 0.5 0.5 point 0.3 0.85 1.0 } plane
0.0 -3.0 0.0 translate
/p
c p union
/scene
-10 10 0 point
1.0 1.0 1.0 point
pointlight
/l
0.2 0.2 0.2 point
[ l ]
scene
7
90.0
480
320
"cube.ppm"
render
`
